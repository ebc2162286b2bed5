package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/toolbox/internal/ui"
)

func TestWriter_StatusLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		write   func(w *ui.Writer)
		wantOut string
		wantErr string
	}{
		{
			name:    "success",
			write:   func(w *ui.Writer) { w.Successf("fetched %d files", 3) },
			wantOut: "✓ fetched 3 files\n",
		},
		{
			name:    "info",
			write:   func(w *ui.Writer) { w.Infof("fetching %s", "src") },
			wantOut: "info: fetching src\n",
		},
		{
			name:    "warning",
			write:   func(w *ui.Writer) { w.Warningf("no config at %s", "/x") },
			wantErr: "warning: no config at /x\n",
		},
		{
			name:    "error",
			write:   func(w *ui.Writer) { w.Error(errors.New("boom")) },
			wantErr: "error: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			tt.write(ui.NewWriterWithOutputs(&out, &errOut, true))

			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantErr, errOut.String())
		})
	}
}

func TestWriter_Color(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	w := ui.NewWriterWithOutputs(&out, &errOut, false)

	w.Successf("done")
	w.Error(errors.New("failed"))

	assert.Equal(t, "\033[32m✓\033[0m done\n", out.String())
	assert.Equal(t, "\033[31merror:\033[0m failed\n", errOut.String())
}

func TestWriter_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := ui.NewWriterWithOutputs(&buf, &bytes.Buffer{}, true)

	err := w.Table([]string{"group", "name"}, [][]string{
		{"hello-world", "greet"},
		{"remote", "fetch"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "GROUP        NAME", lines[0])
	assert.Equal(t, "hello-world  greet", lines[1])
	assert.Equal(t, "remote       fetch", lines[2])
}

func TestWriteTable_NoHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ui.WriteTable(&buf, nil, [][]string{{"a", "b"}}))

	assert.Equal(t, "a  b\n", buf.String())
}
