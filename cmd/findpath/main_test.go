package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "utils"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "utils", "helper.ts"), nil, 0o644))

	return root
}

func TestRun_Resolves(t *testing.T) {
	root := writeProject(t)

	var stdout, stderr bytes.Buffer

	code := run([]string{
		"--from", filepath.Join(root, "src", "app.ts"),
		"--base", root,
		"--path", "@missing/*=nowhere/*",
		"--path", "@utils/*=lib/*,src/utils/*",
		"@utils/helper",
	}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "."+string(os.PathSeparator)+filepath.Join("utils", "helper")+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_NotFound(t *testing.T) {
	root := writeProject(t)

	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-f", filepath.Join(root, "src", "app.ts"),
		"-b", root,
		"-p", "@utils/*=src/utils/*",
		"--explain",
		"@utils/absent",
	}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "reason: NoExistingCandidate")
	assert.Contains(t, stderr.String(), "probed: "+filepath.Join(root, "src", "utils", "absent.tsx"))
}

func TestRun_Strict(t *testing.T) {
	root := writeProject(t)

	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-f", filepath.Join(root, "src", "app.ts"),
		"-b", root,
		"-p", "@utils/*=src/*/*",
		"--strict", "--explain",
		"@utils/helper",
	}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "reason: MalformedTemplate")
	assert.Contains(t, stderr.String(), "MALFORMED_TEMPLATE")
}

func TestRun_Verbose(t *testing.T) {
	root := writeProject(t)

	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-f", filepath.Join(root, "src", "app.ts"),
		"-b", root,
		"-p", "@utils/*=src/utils/*",
		"-v",
		"@utils/helper",
	}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "msg=resolved")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing base", []string{"-f", "/p/a.ts", "x"}, "--base"},
		{"missing request", []string{"-f", "/p/a.ts", "-b", "/p"}, "request"},
		{"bad alias", []string{"-f", "/p/a.ts", "-b", "/p", "-p", "nonsense", "x"}, `invalid --path "nonsense"`},
		{"empty pattern", []string{"-f", "/p/a.ts", "-b", "/p", "-p", "=src/*", "x"}, "invalid --path"},
		{"duplicate alias", []string{"-f", "/p/a.ts", "-b", "/p", "-p", "a=b", "-p", "a=c", "x"}, "duplicate alias pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--help"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "--from")
}

func TestOptions_Table(t *testing.T) {
	opts := Options{Paths: []string{"b/*=x/*,y/*", "a=", "c=z"}}

	table, err := opts.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"b/*", "a", "c"}, table.Patterns())

	templates, _ := table.Templates("b/*")
	assert.Equal(t, []string{"x/*", "y/*"}, templates)

	templates, _ = table.Templates("a")
	assert.Empty(t, templates)
}
