package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent drops the leading blank line of src and strips the indentation
// shared with the first remaining line, so multiline fixtures can be indented
// together with the test code without changing their content.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	rest := lines[1:]
	indent := rest[0][:len(rest[0])-len(strings.TrimLeft(rest[0], " \t"))]

	for i, line := range rest {
		rest[i] = strings.TrimPrefix(line, indent)
	}

	return strings.Join(rest, "\n")
}
