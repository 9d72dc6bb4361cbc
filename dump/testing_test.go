package dump

import (
	"encoding/hex"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const helloWorld = "Hello, world!\n"

// createTestFile writes contents to a fresh file and returns its path.
func createTestFile(t *testing.T, contents []byte) string {
	filepath := path.Join(t.TempDir(), "test.bin")
	require.NoError(t, os.WriteFile(filepath, contents, 0644))
	return filepath
}

// countingReader records the buffer size of every Read call.
type countingReader struct {
	io.Reader
	sizes []int
}

func (r *countingReader) Read(bs []byte) (int, error) {
	r.sizes = append(r.sizes, len(bs))
	return r.Reader.Read(bs)
}

type failingSeeker struct {
	io.Reader
}

func (failingSeeker) Seek(int64, int) (int64, error) {
	return 0, errors.New("seek rejected")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type parsedLine struct {
	offset int64
	bytes  []byte
}

// parseOutput reads offsets and grid bytes back from dumped text.
func parseOutput(t *testing.T, output string, width int) []parsedLine {
	gridLen := width*3 + (width-1)/groupSize
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if output == "" {
		return nil
	}
	parsed := make([]parsedLine, 0, len(lines))
	for _, line := range lines {
		idx := strings.Index(line, " |")
		require.NotEqual(t, -1, idx, line)
		offset, err := strconv.ParseInt(strings.TrimSpace(line[:idx]), 16, 64)
		require.NoError(t, err, line)

		grid := line[idx+2 : idx+2+gridLen]
		require.Equal(t, " | ", line[idx+2+gridLen:idx+2+gridLen+3], line)
		bs := make([]byte, 0, width)
		for _, cell := range strings.Fields(grid) {
			decoded, err := hex.DecodeString(cell)
			require.NoError(t, err, line)
			bs = append(bs, decoded...)
		}
		parsed = append(parsed, parsedLine{offset: offset, bytes: bs})
	}
	return parsed
}
