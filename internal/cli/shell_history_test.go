package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHistory_FileNotFound_ReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "shell_history")
	assert.Nil(t, loadHistoryFromPath(path))
	assert.Nil(t, loadHistoryFromPath(""))
}

func TestLoadHistory_ReadsLinesAndCollapsesRepeats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell_history")
	content := "강남 추천해줘\n강남 추천해줘\n\n/age 2023-01-15\n강남 추천해줘\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines := loadHistoryFromPath(path)
	assert.Equal(t, []string{"강남 추천해줘", "/age 2023-01-15", "강남 추천해줘"}, lines)
}

func TestLoadHistory_TruncatesOverMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell_history")

	var b strings.Builder
	for i := 0; i < 600; i++ {
		b.WriteString("line")
		b.WriteString(strings.Repeat("x", i%2))
		b.WriteString("\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	lines := loadHistoryFromPath(path)
	assert.Len(t, lines, maxHistoryLines)
	assert.Equal(t, "linex", lines[len(lines)-1])
}

func TestAppendHistory_CreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shell_history")

	appendHistoryToPath(path, "  first  ")
	appendHistoryToPath(path, "second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestAppendHistory_SkipsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell_history")

	appendHistoryToPath(path, "")
	appendHistoryToPath(path, "   ")
	appendHistoryToPath("", "line")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should not be created for empty lines")
}
