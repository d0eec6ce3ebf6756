package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHelpListsCommandsAndSearchFlags(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, WriteHelp(&out))

	text := out.String()
	for _, want := range []string{"playfolder <section>", "autorefresh", "-genre", "-year-from", "-desc", "-config <path>"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "newest titles first")
}
