package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsTree(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("cmd/pathtree/main.go\ninternal/tree/node.go\ngo.mod\ninternal/app/app.go\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(in, out)

	// --- Assert ---
	require.NoError(t, err)
	want := strings.Join([]string{
		"├── cmd",
		"│   └── pathtree",
		"│       └── main.go",
		"├── internal",
		"│   ├── app",
		"│   │   └── app.go",
		"│   └── tree",
		"│       └── node.go",
		"└── go.mod",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestRun_InputError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	errClosed := errors.New("stdin closed")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(iotest.ErrReader(errClosed), out)

	// --- Assert ---
	require.ErrorIs(t, err, errClosed)
	require.Empty(t, out.String())
}
