package resolve

import (
	"os"

	"path-alias/alias"
)

// ExistsFunc reports whether a file or directory exists at name.
type ExistsFunc func(name string) bool

// Params is one resolution request.
type Params struct {
	// SourceFileName is the absolute path of the file issuing the request.
	SourceFileName string
	// Request is the module specifier as written in the source file.
	Request string
	// AbsoluteBaseURL is the absolute directory templates are resolved against.
	AbsoluteBaseURL string
	// Paths is the alias table. It is only read.
	Paths *alias.Table
	// FileExists probes candidates. Nil means FileExists.
	FileExists ExistsFunc
}

// applicable reports whether the request is subject to alias remapping
// at all. Relative and absolute requests never are, and every input
// must be present.
func (p Params) applicable() bool {
	if p.SourceFileName == "" || p.Request == "" || p.AbsoluteBaseURL == "" || p.Paths == nil {
		return false
	}

	return p.Request[0] != '.' && p.Request[0] != os.PathSeparator
}

func (p Params) exists() ExistsFunc {
	if p.FileExists != nil {
		return p.FileExists
	}

	return FileExists
}
