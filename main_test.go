package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReportsTerminalFailure(t *testing.T) {
	t.Setenv("TERM", "no-such-terminal-xyz")

	var stdout bytes.Buffer
	err := run([]string{"-frontend", "terminal", "-seed", "1"}, &stdout)
	require.Error(t, err)
	assert.Empty(t, stdout.String())

	var stderr bytes.Buffer
	assert.Equal(t, 1, reportError(&stderr, err))
	assert.Contains(t, stderr.String(), "snake: ")
	assert.Contains(t, stderr.String(), err.Error())
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-walls"}},
		{"unknown frontend", []string{"-frontend", "web"}},
		{"missing config", []string{"-config", filepath.Join(os.TempDir(), "missing-snake-config.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run(tt.args, &stdout)
			require.Error(t, err)

			var stderr bytes.Buffer
			reportError(&stderr, err)
			assert.NotEmpty(t, stderr.String())
		})
	}
}
