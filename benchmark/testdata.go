// Package benchmark compares vjson against other JSON libraries on shared
// corpora. Run with: go test -bench=. ./benchmark
package benchmark

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	smallJSON = []byte(`{"name":"John","age":30,"city":"New York"}`)

	mediumJSON = []byte(`{
  "name": "John Smith",
  "age": 35,
  "address": {
    "street": "123 Main St",
    "city": "San Francisco",
    "state": "CA",
    "zip": "94103"
  },
  "phones": [
    {"type": "home", "number": "555-1234"},
    {"type": "work", "number": "555-5678"}
  ],
  "email": "john@example.com",
  "active": true,
  "scores": [95, 87, 92, 78, 85]
}`)

	storeJSON = []byte(`{
  "store": {
    "book": [
      {"category": "reference", "author": "Nigel Rees", "title": "Sayings of the Century", "price": 8.95},
      {"category": "fiction", "author": "Evelyn Waugh", "title": "Sword of Honour", "price": 12.99},
      {"category": "fiction", "author": "Herman Melville", "title": "Moby Dick", "isbn": "0-553-21311-3", "price": 8.99},
      {"category": "fiction", "author": "J. R. R. Tolkien", "title": "The Lord of the Rings", "isbn": "0-395-19395-8", "price": 22.99},
      {"category": "fiction", "author": "Jane Austen", "title": "Pride and Prejudice", "price": 9.95},
      {"category": "fiction", "author": "Charles Dickens", "title": "A Tale of Two Cities", "price": 11.50},
      {"category": "reference", "author": "John Doe", "title": "Technical Manual", "price": 15.00},
      {"category": "fiction", "author": "Mark Twain", "title": "Adventures of Huckleberry Finn", "price": 7.99}
    ],
    "bicycle": {"color": "red", "price": 19.95},
    "car": {"color": "blue", "price": 29999.99},
    "electronics": [
      {"name": "laptop", "price": 1299.99, "stock": 10},
      {"name": "phone", "price": 899.99, "stock": 25},
      {"name": "tablet", "price": 599.99, "stock": 15}
    ]
  },
  "expensive": 10
}`)

	largeJSON = generateLargeJSON(1000)
)

// generateLargeJSON builds an items document with n faked records. The seed
// is fixed so every run benchmarks identical bytes.
func generateLargeJSON(n int) []byte {
	faker := gofakeit.New(11)
	var b strings.Builder
	b.WriteString(`{"items":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b,
			`{"id":%d,"name":%q,"email":%q,"company":%q,"balance":%.2f,"active":%v,"tags":[%q,%q],"metadata":{"created":"2025-09-01","priority":%d}}`,
			i,
			faker.Name(),
			faker.Email(),
			faker.Company(),
			faker.Float64Range(-1000, 100000),
			i%3 == 0,
			faker.Word(),
			faker.Word(),
			faker.Number(0, 4),
		)
	}
	fmt.Fprintf(&b, `],"metadata":{"count":%d,"generated":"2025-09-01"}}`, n)
	return []byte(b.String())
}
