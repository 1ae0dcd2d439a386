package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	var stderr bytes.Buffer

	opts, err := ParseArgs("click-coords", []string{"picture.png"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "picture.png", opts.ImagePath)
	assert.Equal(t, DefaultWindowTitle, opts.WindowTitle)
	assert.Empty(t, stderr.String())
}

func TestParseArgs_PathAfterDoubleDash(t *testing.T) {
	opts, err := ParseArgs("click-coords", []string{"--", "-odd-name.png"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "-odd-name.png", opts.ImagePath)
}

func TestParseArgs_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two paths", []string{"a.png", "b.png"}},
		{"unknown flag", []string{"-x", "a.png"}},
	}

	for _, test := range tests {
		var stderr bytes.Buffer
		_, err := ParseArgs("click-coords", test.args, &stderr)

		assert.ErrorIs(t, err, ErrUsage, test.name)
		assert.Contains(t, stderr.String(), "usage: click-coords <image>", test.name)
	}
}

func TestParseArgs_Help(t *testing.T) {
	var stderr bytes.Buffer
	_, err := ParseArgs("", []string{"-h"}, &stderr)

	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "usage: "+DefaultProgramName)
}
