package tools

import (
	"fmt"
	"strings"

	"github.com/computerscienceiscool/agent-workspace/internal/ingest"
	"github.com/computerscienceiscool/agent-workspace/internal/memory"
	"github.com/computerscienceiscool/agent-workspace/internal/workspace"
)

// RegisterFileTools wires the workspace file operations, and the ingestion
// path, into the registry under their canonical tool names.
func RegisterFileTools(r *Registry, store *workspace.Store, ingestor *ingest.Ingestor, mem memory.Memory, maxLength, overlap int) {
	filenameParam := ParameterSpec{
		Name:        "filename",
		Type:        "string",
		Description: "Path of the file, relative to the working directory",
		Required:    true,
	}

	r.Register(Tool{
		Name:        "read_file",
		Description: "Read a file and return its contents",
		Parameters:  []ParameterSpec{filenameParam},
		Run: func(args map[string]string) (string, error) {
			return store.Read(args["filename"])
		},
	})

	r.Register(Tool{
		Name:        "write_to_file",
		Description: "Write text to a file, creating parent directories as needed",
		Parameters: []ParameterSpec{
			filenameParam,
			{Name: "text", Type: "string", Description: "The text to write", Required: true},
		},
		Run: func(args map[string]string) (string, error) {
			if err := store.Write(args["filename"], args["text"]); err != nil {
				return "", err
			}
			return "File written to successfully.", nil
		},
	})

	r.Register(Tool{
		Name:        "append_to_file",
		Description: "Append text to a file",
		Parameters: []ParameterSpec{
			filenameParam,
			{Name: "text", Type: "string", Description: "The text to append", Required: true},
		},
		Run: func(args map[string]string) (string, error) {
			if err := store.Append(args["filename"], args["text"]); err != nil {
				return "", err
			}
			return "Text appended successfully.", nil
		},
	})

	r.Register(Tool{
		Name:        "delete_file",
		Description: "Delete a file",
		Parameters:  []ParameterSpec{filenameParam},
		Run: func(args map[string]string) (string, error) {
			if err := store.Delete(args["filename"]); err != nil {
				return "", err
			}
			return "File deleted successfully.", nil
		},
	})

	r.Register(Tool{
		Name:        "search_files",
		Description: "List files under a directory of the working directory, skipping dotfiles",
		Parameters: []ParameterSpec{
			{Name: "directory", Type: "string", Description: "Directory to search; empty or / means the whole working directory", Required: false},
		},
		Run: func(args map[string]string) (string, error) {
			found, err := store.Search(args["directory"])
			if err != nil {
				return "", err
			}
			return strings.Join(found, "\n"), nil
		},
	})

	r.Register(Tool{
		Name:        "ingest_file",
		Description: "Split a file into overlapping chunks and add them to memory",
		Parameters:  []ParameterSpec{filenameParam},
		Run: func(args map[string]string) (string, error) {
			// Best-effort by contract: ingestion failures are logged
			// inside the ingestor and never surface here.
			ingestor.Ingest(args["filename"], mem, maxLength, overlap)
			return fmt.Sprintf("Ingested file %s.", args["filename"]), nil
		},
	})
}
