// Created by dhawalhost (2025-11-09 17:05:48)
package vjson

import (
	"strconv"

	"github.com/dhawalhost/vjson/floatconv"
)

// ToString renders v as compact JSON. Object members appear in canonical
// sorted key order, so two structurally equal documents always render to
// identical bytes.
func (v *Value) ToString() string {
	return string(v.appendJSON(nil, false, 0))
}

// ToStringPretty renders v with two-space indentation. Arrays stay on one
// line with ", " separators; objects with more than one member get one
// member per line.
func (v *Value) ToStringPretty() string {
	return string(v.appendJSON(nil, true, 0))
}

// MarshalTo appends the compact form of v to dst and returns the result.
func (v *Value) MarshalTo(dst []byte) []byte {
	return v.appendJSON(dst, false, 0)
}

// String implements fmt.Stringer as the compact form.
func (v *Value) String() string {
	return v.ToString()
}

func (v *Value) appendJSON(dst []byte, pretty bool, indent int) []byte {
	if v == nil {
		return append(dst, "null"...)
	}
	switch v.t {
	case TypeNull:
		return append(dst, "null"...)
	case TypeBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case TypeLong:
		return strconv.AppendInt(dst, v.i, 10)
	case TypeFloat:
		return floatconv.AppendFloat(dst, float32(v.f))
	case TypeDouble:
		return floatconv.AppendDouble(dst, v.f)
	case TypeString:
		return appendQuoted(dst, v.s)
	case TypeArray:
		dst = append(dst, '[')
		for i, e := range v.a {
			if i > 0 {
				dst = append(dst, ',')
				if pretty {
					dst = append(dst, ' ')
				}
			}
			dst = e.appendJSON(dst, pretty, indent)
		}
		return append(dst, ']')
	case TypeObject:
		dst = append(dst, '{')
		multiline := pretty && v.o.Len() > 1
		for i, e := range v.o.kvs {
			if i > 0 {
				dst = append(dst, ',')
			}
			inner := indent
			if multiline {
				inner++
				dst = append(dst, '\n')
				dst = appendIndent(dst, inner)
			}
			dst = appendQuoted(dst, e.k)
			dst = append(dst, ':')
			if pretty {
				dst = append(dst, ' ')
			}
			dst = e.v.appendJSON(dst, pretty, inner)
		}
		if multiline {
			dst = append(dst, '\n')
			dst = appendIndent(dst, indent)
		}
		return append(dst, '}')
	}
	return dst
}

func appendIndent(dst []byte, indent int) []byte {
	for i := 0; i < indent; i++ {
		dst = append(dst, ' ', ' ')
	}
	return dst
}

//------------------------------------------------------------------------------
// STRING ESCAPING
//------------------------------------------------------------------------------

// appendQuoted writes s as a JSON string. Multibyte sequences are decoded so
// non-ASCII code points can be written as \uHHHH escapes; when a sequence
// does not decode, the raw bytes are escaped one at a time, so a string
// holding invalid UTF-8 still round-trips.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		r := rune(s[i])
		i++
		if r >= 0xC0 {
			r, i = decodeMultibyte(s, byte(r), i)
		}
		if r < 0x80 {
			switch escapeLiteral[r] {
			case escNone:
				dst = append(dst, byte(r))
			case escTab:
				dst = append(dst, '\\', 't')
			case escNewline:
				dst = append(dst, '\\', 'n')
			case escReturn:
				dst = append(dst, '\\', 'r')
			case escFormFeed:
				dst = append(dst, '\\', 'f')
			case escBackslash:
				dst = append(dst, '\\', '\\')
			case escSlash:
				dst = append(dst, '\\', '/')
			case escQuote:
				dst = append(dst, '\\', '"')
			case escUnicode:
				dst = appendUnicodeEscape(dst, r)
			}
		} else {
			dst = appendUnicodeEscape(dst, r)
		}
	}
	return append(dst, '"')
}

// decodeMultibyte merges a lead byte with its continuation bytes. When the
// continuations are missing or truncated the lead byte is returned unchanged
// and the position does not advance, so each bad byte gets escaped on its
// own.
func decodeMultibyte(s string, lead byte, i int) (rune, int) {
	n := leadLen(lead)
	if i+n-1 > len(s) {
		return rune(lead), i
	}
	r := rune(lead & leadMask(n))
	for j := 0; j < n-1; j++ {
		c := s[i+j]
		if c&0xC0 != 0x80 {
			return rune(lead), i
		}
		r = r<<6 | rune(c&0x3F)
	}
	return r, i + n - 1
}

// leadLen returns the sequence length implied by a lead byte >= 0xC0.
func leadLen(lead byte) int {
	n := 2
	for mask := byte(0x20); mask > 0x02 && lead&mask != 0; mask >>= 1 {
		n++
	}
	return n
}

func leadMask(n int) byte {
	return (byte(1<<(7-n)) - 1) | 3
}

// appendUnicodeEscape writes r as one \uHHHH escape, or as a surrogate pair
// above the BMP. Code points beyond U+10FFFF degrade to the replacement
// character.
func appendUnicodeEscape(dst []byte, r rune) []byte {
	if r > 0x10FFFF {
		r = 0xFFFD
	}
	if r >= 0x10000 {
		r -= 0x10000
		dst = appendHex4(dst, 0xD800+(r>>10))
		return appendHex4(dst, 0xDC00+(r&0x3FF))
	}
	return appendHex4(dst, r)
}

func appendHex4(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		lowerHex[r>>12&0xF], lowerHex[r>>8&0xF], lowerHex[r>>4&0xF], lowerHex[r&0xF])
}
