package groups

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/olehluchkiv/syngraph/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine_SortsMembers(t *testing.T) {
	got := FormatLine(LabelGroup, 1, graph.Component{"g3", "g1", "g4", "g2"})
	assert.Equal(t, "Group1\tg1\tg2\tg3\tg4\n", got)
}

func TestFormatLine_Deduplicates(t *testing.T) {
	got := FormatLine(LabelMS, 7, graph.Component{"b", "a", "b"})
	assert.Equal(t, "MS7\ta\tb\n", got)
}

func TestFormatLine_LexicographicNotNumeric(t *testing.T) {
	got := FormatLine(LabelGroup, 1, graph.Component{"g10", "g2", "G1"})
	assert.Equal(t, "Group1\tG1\tg10\tg2\n", got)
}

func TestFormatLine_DoesNotMutateInput(t *testing.T) {
	comp := graph.Component{"z", "a"}
	FormatLine(LabelGroup, 1, comp)
	assert.Equal(t, graph.Component{"z", "a"}, comp)
}

func TestWrite_NumbersInOrder(t *testing.T) {
	var buf bytes.Buffer
	comps := []graph.Component{{"d", "c"}, {"b", "a"}}
	require.NoError(t, Write(&buf, LabelGroup, comps))
	assert.Equal(t, "Group1\tc\td\nGroup2\ta\tb\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesError(t *testing.T) {
	err := Write(failingWriter{}, LabelMS, []graph.Component{{"a", "b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteFile_EmptyCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteFile(path, LabelGroup, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteFile_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is long\n"), 0o644))

	require.NoError(t, WriteFile(path, LabelMS, []graph.Component{{"sp_2_g1", "sp_1_g1"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "MS1\tsp_1_g1\tsp_2_g1\n", string(data))
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	err := WriteFile(path, LabelGroup, []graph.Component{{"a", "b"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
