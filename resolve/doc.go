// Package resolve maps a module request issued from a source file onto
// an existing file through an ordered alias table, the way a compiler's
// "paths" mapping with a base directory does.
//
// The result is a path relative to the source file's directory that
// always starts with "." (for example "./utils/helper" or "../lib/x"),
// so it can never be mistaken for a package specifier. Requests that are
// already relative or absolute are never remapped.
//
// The filesystem is only reached through an ExistsFunc, which defaults
// to FileExists. Nothing is cached between calls.
package resolve
