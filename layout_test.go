package carbonboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLayout(t *testing.T, content string) string {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLayout(t *testing.T) {

	path := writeLayout(t, "columns:\n  - field: name\n    title: Project\n    width: 28\n")

	layout, err := LoadLayout(path)
	require.NoError(t, err)

	require.Len(t, layout.Columns, 1)
	assert.Equal(t, "name", layout.Columns[0].Field)
	assert.Equal(t, 28, layout.Columns[0].Width)
}

func TestLoadLayoutMissingFallsBack(t *testing.T) {

	layout, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, layout.Columns)
}

func TestLoadLayoutRejectsZeroWidth(t *testing.T) {

	path := writeLayout(t, "columns:\n  - field: name\n    title: Project\n")

	_, err := LoadLayout(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}
