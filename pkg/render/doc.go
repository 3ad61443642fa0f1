// Package render turns registered tab groups into output for a terminal,
// a pipe, or another program.
//
// The registry treats tab contents as opaque; this package is the one place
// that interprets them. Supported payloads are nil, string, Markdown,
// fmt.Stringer, []byte and ContentsFunc for lazily computed contents.
package render
