package version

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowVersion(t *testing.T) {
	var buf bytes.Buffer
	ShowVersion(&buf)
	assert.Contains(t, buf.String(), "MediaPoisk v"+Version)
	assert.Contains(t, buf.String(), "SQLite storage")
}

func TestHasVersionArg(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	for arg, want := range map[string]bool{"-version": true, "--version": true, "-v": true, "version": true, "search": false} {
		os.Args = []string{"mediapoisk", arg}
		assert.Equal(t, want, HasVersionArg(), arg)
	}
	os.Args = []string{"mediapoisk"}
	assert.False(t, HasVersionArg())
}
