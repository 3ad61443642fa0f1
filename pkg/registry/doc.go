// Package registry provides a small generic, thread-safe name-to-value
// catalog. It backs the lookup tables of the CLI: output renderers by
// format name and built-in modules by module name.
package registry
