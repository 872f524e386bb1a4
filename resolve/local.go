package resolve

import (
	"os"
	"strings"
)

// ConvertToLocal makes a relative path explicitly local by prefixing
// "." and the path separator, so "bar/baz" becomes "./bar/baz". Empty
// paths and paths already starting with "." are returned unchanged.
func ConvertToLocal(p string) string {
	if p == "" || strings.HasPrefix(p, ".") {
		return p
	}

	return "." + string(os.PathSeparator) + p
}
