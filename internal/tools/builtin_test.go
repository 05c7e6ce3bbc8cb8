package tools

import (
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/computerscienceiscool/agent-workspace/internal/ingest"
	"github.com/computerscienceiscool/agent-workspace/internal/workspace"
)

type sliceMemory struct {
	entries []string
}

func (m *sliceMemory) Add(text string) error {
	m.entries = append(m.entries, text)
	return nil
}

func newFileToolRegistry(t *testing.T) (*Registry, *sliceMemory) {
	t.Helper()
	store, err := workspace.New(filepath.Join(t.TempDir(), "ws"), true, "file_logger.txt")
	require.NoError(t, err)

	mem := &sliceMemory{}
	registry := NewRegistry()
	ingestor := ingest.New(store, log.New(io.Discard, "", 0))
	RegisterFileTools(registry, store, ingestor, mem, 100, 20)
	return registry, mem
}

// TestFileToolsRoundTrip tests write then read through the tool surface
func TestFileToolsRoundTrip(t *testing.T) {
	registry, _ := newFileToolRegistry(t)

	result := registry.Dispatch("write_to_file", map[string]string{
		"filename": "a.txt",
		"text":     "hello",
	})
	assert.Equal(t, "File written to successfully.", result)

	result = registry.Dispatch("read_file", map[string]string{"filename": "a.txt"})
	assert.Equal(t, "hello", result)
}

// TestFileToolsDuplicateWrite tests the flattened duplicate-write failure
func TestFileToolsDuplicateWrite(t *testing.T) {
	registry, _ := newFileToolRegistry(t)

	args := map[string]string{"filename": "a.txt", "text": "x"}
	assert.Equal(t, "File written to successfully.", registry.Dispatch("write_to_file", args))

	result := registry.Dispatch("write_to_file", args)
	assert.True(t, strings.HasPrefix(result, "Error: "), "got %q", result)
	assert.Contains(t, result, "DUPLICATE_OPERATION")
}

// TestFileToolsDeleteTwice tests the flattened duplicate-delete failure
func TestFileToolsDeleteTwice(t *testing.T) {
	registry, _ := newFileToolRegistry(t)

	registry.Dispatch("write_to_file", map[string]string{"filename": "a.txt", "text": "x"})

	args := map[string]string{"filename": "a.txt"}
	assert.Equal(t, "File deleted successfully.", registry.Dispatch("delete_file", args))

	result := registry.Dispatch("delete_file", args)
	assert.True(t, strings.HasPrefix(result, "Error: "), "got %q", result)
	assert.Contains(t, result, "DUPLICATE_OPERATION")
}

// TestFileToolsReadFailureIsText tests that read failures come back as
// descriptive text rather than panics
func TestFileToolsReadFailureIsText(t *testing.T) {
	registry, _ := newFileToolRegistry(t)

	result := registry.Dispatch("read_file", map[string]string{"filename": "absent.txt"})
	assert.True(t, strings.HasPrefix(result, "Error: "), "got %q", result)
	assert.Contains(t, result, "FILE_NOT_FOUND")
}

// TestFileToolsSearch tests the newline-joined search result
func TestFileToolsSearch(t *testing.T) {
	registry, _ := newFileToolRegistry(t)

	registry.Dispatch("write_to_file", map[string]string{"filename": "one.txt", "text": "x"})
	registry.Dispatch("write_to_file", map[string]string{"filename": "sub/two.txt", "text": "x"})

	result := registry.Dispatch("search_files", map[string]string{"directory": ""})
	assert.Contains(t, result, "one.txt")
	assert.Contains(t, result, filepath.Join("sub", "two.txt"))
}

// TestFileToolsIngest tests ingestion through the tool surface
func TestFileToolsIngest(t *testing.T) {
	registry, mem := newFileToolRegistry(t)

	registry.Dispatch("write_to_file", map[string]string{
		"filename": "doc.txt",
		"text":     strings.Repeat("a", 150),
	})

	result := registry.Dispatch("ingest_file", map[string]string{"filename": "doc.txt"})
	assert.Equal(t, "Ingested file doc.txt.", result)
	require.Len(t, mem.entries, 2)
	assert.Contains(t, mem.entries[0], "Content part#1/2: ")
}
