// Package text provides identifier casing and small string formatting
// helpers.
//
// Key operations:
// - CamelCase/PascalCase/KebabCase/SnakeCase: casing conversions sharing
//   one word splitter (Words)
// - Truncate: rune-aware shortening with a configurable ellipsis marker
// - WordCount: whitespace-separated word counting
// - Pluralize: counted phrases ("1 hour", "2 hours")
package text
