// Package classname extracts the default-exported class name from source
// text and rewrites it. Matching is purely textual: a single regular
// expression is applied to the whole file, so declarations inside comments
// or string literals are matched as well.
package classname
