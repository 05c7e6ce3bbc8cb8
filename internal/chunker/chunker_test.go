package chunker

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/computerscienceiscool/agent-workspace/internal/errors"
)

// TestSplitWithOverlap tests the documented 4500/4000/200 case: two
// chunks, the second starting at offset 3800
func TestSplitWithOverlap(t *testing.T) {
	content := strings.Repeat("a", 3800) + strings.Repeat("b", 400) + strings.Repeat("c", 300)
	require.Len(t, content, 4500)

	chunks, err := Split(content, 4000, 200)
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	// First chunk spans [0, 4200), second [3800, 4500); they share [3800, 4200).
	assert.Equal(t, content[:4200], chunks[0])
	assert.Equal(t, content[3800:], chunks[1])
	assert.Equal(t, chunks[0][3800:], chunks[1][:400])
}

// TestSplitNoOverlap tests exact division without overlap
func TestSplitNoOverlap(t *testing.T) {
	content := strings.Repeat("x", 8000)

	chunks, err := Split(content, 4000, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, content[:4000], chunks[0])
	assert.Equal(t, content[4000:], chunks[1])
}

// TestSplitEmptyContent tests that empty content yields zero chunks
func TestSplitEmptyContent(t *testing.T) {
	chunks, err := Split("", 4000, 200)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

// TestSplitShortContent tests content shorter than one chunk
func TestSplitShortContent(t *testing.T) {
	chunks, err := Split("hello", 4000, 200)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello", chunks[0])
}

// TestSplitMultibyteContent tests that lengths count characters, so
// multibyte runes are never split across chunk boundaries
func TestSplitMultibyteContent(t *testing.T) {
	content := strings.Repeat("é", 5)

	chunks, err := Split(content, 3, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	assert.Equal(t, "ééé", chunks[0])
	assert.Equal(t, "éé", chunks[1])
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), "chunk %q is not valid UTF-8", chunk)
	}

	// Overlap also counts characters.
	mixed := "日本語のテキスト"
	chunks, err = Split(mixed, 4, 2)
	require.NoError(t, err)
	require.Len(t, chunks, 4)
	assert.Equal(t, "日本語のテキ", chunks[0])
	assert.Equal(t, "語のテキスト", chunks[1])
	assert.Equal(t, "テキスト", chunks[2])
	assert.Equal(t, "スト", chunks[3])
}

// TestSplitCoversContent tests that chunk starts cover the whole content
// and the sequence terminates for any overlap < maxLength
func TestSplitCoversContent(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		maxLength int
		overlap   int
	}{
		{"tiny stride", 100, 10, 9},
		{"half overlap", 1000, 100, 50},
		{"no overlap", 1000, 64, 0},
		{"uneven tail", 4321, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Repeat("z", tt.length)

			chunks, err := Split(content, tt.maxLength, tt.overlap)
			require.NoError(t, err)
			require.NotEmpty(t, chunks)

			stride := tt.maxLength - tt.overlap
			covered := 0
			for i, chunk := range chunks {
				start := i * stride
				assert.Less(t, start, tt.length)
				assert.LessOrEqual(t, len(chunk), tt.maxLength+tt.overlap)
				if end := start + len(chunk); end > covered {
					covered = end
				}
			}
			assert.Equal(t, tt.length, covered)
		})
	}
}

// TestScannerReset tests that the chunk sequence is restartable
func TestScannerReset(t *testing.T) {
	content := strings.Repeat("q", 250)

	scanner, err := NewScanner(content, 100, 10)
	require.NoError(t, err)

	var first []string
	for scanner.Scan() {
		first = append(first, scanner.Text())
	}
	require.NotEmpty(t, first)

	scanner.Reset()
	var second []string
	for scanner.Scan() {
		second = append(second, scanner.Text())
	}

	assert.Equal(t, first, second)
}

// TestNewScannerRejectsBadConfig tests the overlap < maxLength precondition
func TestNewScannerRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name      string
		maxLength int
		overlap   int
	}{
		{"overlap equals max", 100, 100},
		{"overlap exceeds max", 100, 150},
		{"negative overlap", 100, -1},
		{"zero max length", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScanner("content", tt.maxLength, tt.overlap)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrBadChunkConfig))
		})
	}
}
