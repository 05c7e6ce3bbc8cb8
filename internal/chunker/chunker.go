package chunker

import (
	"fmt"

	apperrors "github.com/computerscienceiscool/agent-workspace/internal/errors"
)

// Default chunking parameters. 4000 characters is roughly 1k tokens.
const (
	DefaultMaxLength = 4000
	DefaultOverlap   = 0
)

// Scanner yields successive chunks of content in the bufio.Scanner idiom.
// Each chunk spans up to maxLength+overlap characters; successive chunks
// share overlap characters with their predecessor. The sequence is finite
// and restartable via Reset.
//
// Lengths count characters, not bytes, so multibyte text is never split
// mid-rune.
type Scanner struct {
	content   []rune
	maxLength int
	overlap   int
	start     int
	chunk     string
}

// NewScanner creates a chunk scanner. overlap must be smaller than
// maxLength: a larger overlap makes the stride non-advancing and the
// sequence ill-defined.
func NewScanner(content string, maxLength, overlap int) (*Scanner, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("%w: max length must be positive, got %d", apperrors.ErrBadChunkConfig, maxLength)
	}
	if overlap < 0 || overlap >= maxLength {
		return nil, fmt.Errorf("%w: overlap %d must be in [0, %d)", apperrors.ErrBadChunkConfig, overlap, maxLength)
	}
	return &Scanner{
		content:   []rune(content),
		maxLength: maxLength,
		overlap:   overlap,
	}, nil
}

// Scan advances to the next chunk. It returns false when the content is
// exhausted; empty content yields zero chunks.
func (s *Scanner) Scan() bool {
	if s.start >= len(s.content) {
		return false
	}

	end := s.start + s.maxLength
	if end+s.overlap < len(s.content) {
		end += s.overlap
	} else {
		end = len(s.content)
	}

	s.chunk = string(s.content[s.start:end])
	s.start += s.maxLength - s.overlap
	return true
}

// Text returns the current chunk.
func (s *Scanner) Text() string {
	return s.chunk
}

// Reset rewinds the scanner so the sequence can be replayed.
func (s *Scanner) Reset() {
	s.start = 0
	s.chunk = ""
}

// Split eagerly collects every chunk of content.
func Split(content string, maxLength, overlap int) ([]string, error) {
	scanner, err := NewScanner(content, maxLength, overlap)
	if err != nil {
		return nil, err
	}

	var chunks []string
	for scanner.Scan() {
		chunks = append(chunks, scanner.Text())
	}
	return chunks, nil
}
