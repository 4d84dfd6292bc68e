package vjson

import "testing"

func TestParse_StringEscapes(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`"hello"`, "hello"},
		{`"\" \\ \/ \b \f \n \r \t"`, "\" \\ / \b \f \n \r \t"},
		{`"\x41\x7e\x20"`, "A~ "},
		{`"\u0048\u0065\u006C\u006C\u006F"`, "Hello"},
		{`"\u00a0"`, "\u00a0"},
		{`"\u0123\u4567\u89AB\uCDEF\uabcd\uef4A"`, "\u0123\u4567\u89ab\ucdef\uabcd\uef4a"},
		// A valid surrogate pair decodes to a single supplementary code
		// point, stored as four UTF-8 bytes.
		{`"\uD800\uDC00"`, "\xf0\x90\x80\x80"},
		{`"\uD834\uDD1E"`, "\U0001D11E"},
		// Malformed surrogate sequences echo the literal backslash-u and the
		// hex digits re-scan as plain characters.
		{`"\uDFAA"`, `\uDFAA`},
		{`"\ud800abc"`, `\ud800abc`},
		{`"\uD800\uD800"`, `\uD800\uD800`},
		{`"\uDd1ea"`, `\uDd1ea`},
	}
	for _, tt := range tests {
		v, st := ParseString(tt.json)
		if st != Success {
			t.Fatalf("Parse(%q) = %s", tt.json, st)
		}
		got, _ := v.Str()
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.json, got, tt.want)
		}
	}
}

func TestParse_UTF8Validation(t *testing.T) {
	tests := []struct {
		json string
		want Status
	}{
		// Well-formed sequences of each width.
		{"\"\xc3\xa9\"", Success},         // U+00E9
		{"\"\xe2\x82\xac\"", Success},     // U+20AC
		{"\"\xf0\x9f\x87\xa8\"", Success}, // U+1F1E8
		// Truncation and malformed continuations.
		{"\"\xe9\"", MalformedUTF8},
		{"\"\xe0\xff\"", MalformedUTF8},
		{"\"\xc3\"", MalformedUTF8},
		{"\"\xf1\x80\x80\"", MalformedUTF8},
		// Overlong encodings.
		{"\"\xc0\xaf\"", OverlongASCII},
		{"\"\xc1\x81\"", OverlongASCII},
		{"\"\xe0\x80\x80\"", OverlongUTF8x7FF},
		{"\"\xe0\x9f\xbf\"", OverlongUTF8x7FF},
		{"\"\xf0\x80\x80\x80\"", OverlongUTF8xFFFF},
		{"\"\xf0\x8f\xbf\xbf\"", OverlongUTF8xFFFF},
		// Surrogate halves encoded directly.
		{"\"\xed\xa0\x80\"", UTF16SurrogateInUTF8},
		{"\"\xed\xbf\xbf\"", UTF16SurrogateInUTF8},
		// 0xED with a low second byte is an ordinary code point.
		{"\"\xed\x9f\xbf\"", Success}, // U+D7FF
		// Beyond U+10FFFF.
		{"\"\xf4\xbf\xbf\xbf\"", UTF8ExceedsUTF16Range},
		// Bytes that can never appear.
		{"\"\xff\"", IllegalUTF8Character},
		{"\"\xfe\"", IllegalUTF8Character},
		{"\"\xfc\x80\x80\x80\x80\x80\"", IllegalUTF8Character},
		{"\"\xb9\"", IllegalUTF8Character},
		// Controls.
		{"\"\x81\"", C1ControlCodeInString},
		{"\"\x9f\"", C1ControlCodeInString},
		{"\"\x01\"", NonDelC0ControlCodeInString},
		{"\"\x7f\"", Success}, // DEL passes
	}
	for _, tt := range tests {
		_, st := ParseString(tt.json)
		if st != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.json, st, tt.want)
		}
	}
}

// CESU-8 surrogate pairs are accepted and recoded into a single four-byte
// sequence.
func TestParse_CESU8(t *testing.T) {
	// U+10000 as CESU-8: ED A0 80 ED B0 80.
	v, st := ParseString("\"\xed\xa0\x80\xed\xb0\x80\"")
	if st != Success {
		t.Fatalf("Parse = %s", st)
	}
	got, _ := v.Str()
	if got != "\xf0\x90\x80\x80" {
		t.Errorf("decoded = %x, want f0908080", got)
	}
	// U+1D11E as CESU-8: ED A0 B4 ED B4 9E.
	v, st = ParseString("\"\xed\xa0\xb4\xed\xb4\x9e\"")
	if st != Success {
		t.Fatalf("Parse = %s", st)
	}
	got, _ = v.Str()
	if got != "\U0001D11E" {
		t.Errorf("decoded = %q, want U+1D11E", got)
	}
	// A high surrogate followed by a non-surrogate sequence is rejected.
	if _, st := ParseString("\"\xed\xa0\x80\x41\""); st != UTF16SurrogateInUTF8 {
		t.Errorf("lone CESU-8 high half = %s, want utf16_surrogate_in_utf8", st)
	}
}

// Serialization expectations adapted from the upstream round-trip corpus.
func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		before string
		after  string
	}{
		{"0", "0"},
		{"[]", "[]"},
		{"{}", "{}"},
		{"0.1", "0.1"},
		{`""`, `""`},
		{"null", "null"},
		{"true", "true"},
		{"false", "false"},

		{` ["\u0020"] `, `[" "]`},
		{` ["\u00A0"] `, `["\u00a0"]`},

		// Invalid UTF-16 escape sequences degrade to plain ASCII.
		{`["\uDFAA"]`, `["\\uDFAA"]`},
		{` ["\uDd1e\uD834"] `, `["\\uDd1e\\uD834"]`},
		{` ["\ud800abc"] `, `["\\ud800abc"]`},
		{` ["\ud800"] `, `["\\ud800"]`},
		{` ["\uD800\uD800\n"] `, `["\\uD800\\uD800\n"]`},
		{` ["\uDd1ea"] `, `["\\uDd1ea"]`},
		{` ["\uD800\n"] `, `["\\uD800\n"]`},

		// Underflow and overflow.
		{` [123.456e-789] `, "[0]"},
		{" [0.4e00669999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999969999999006] ", "[1e5000]"},
		{` [1.5e+9999] `, "[1e5000]"},
		{` [-1.5e+9999] `, "[-1e5000]"},
		{` [-123123123123123123123123123123] `, "[-1.2312312312312312e+29]"},
	}
	for _, tt := range tests {
		v, st := ParseString(tt.before)
		if st != Success {
			t.Fatalf("Parse(%q) = %s", tt.before, st)
		}
		if got := v.ToString(); got != tt.after {
			t.Errorf("Parse(%q).ToString() = %s, want %s", tt.before, got, tt.after)
		}
	}
}

// Whatever a successful parse produces must itself reparse to an equal tree.
func TestParse_ReparseStability(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[2,3],"c":{"d":null,"e":[true,false,"x"]}}`,
		`["\uD800\uDC00","\u00a0",3.14,-0.5,1e21,1e-7]`,
		`{"special":"` + "`1~!@#$%^&*()_+-={':[,]}|;.</>?" + `"}`,
		`[0.5,98.6,99.44,1066,1e1,0.1e1,1e-1,1e00,2e+00,2e-00,"rosebud"]`,
	}
	for _, in := range inputs {
		v, st := ParseString(in)
		if st != Success {
			t.Fatalf("Parse(%q) = %s", in, st)
		}
		out := v.ToString()
		v2, st := ParseString(out)
		if st != Success {
			t.Fatalf("reparse(%q) = %s", out, st)
		}
		if !v.Equals(v2) {
			t.Errorf("reparse of %q not structurally equal (serialized %q)", in, out)
		}
		if out2 := v2.ToString(); out2 != out {
			t.Errorf("canonical form unstable: %q then %q", out, out2)
		}
	}
}
