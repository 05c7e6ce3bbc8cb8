package ingest

import (
	"fmt"
	"log"

	"github.com/computerscienceiscool/agent-workspace/internal/chunker"
	"github.com/computerscienceiscool/agent-workspace/internal/memory"
	"github.com/computerscienceiscool/agent-workspace/internal/workspace"
)

// Default chunk parameters for ingestion. Overlap keeps context across
// chunk boundaries for the downstream index.
const (
	DefaultMaxLength = 4000
	DefaultOverlap   = 200
)

// Ingestor feeds workspace files into a memory index: read the file,
// split it into overlapping chunks, add each chunk in order.
type Ingestor struct {
	store  *workspace.Store
	logger *log.Logger
}

// New creates an ingestor over the given store. logger may be nil, in
// which case the default logger is used.
func New(store *workspace.Store, logger *log.Logger) *Ingestor {
	if logger == nil {
		logger = log.Default()
	}
	return &Ingestor{store: store, logger: logger}
}

// Ingest is fire-and-forget by contract: any failure along the way is
// logged and swallowed, and the caller receives no error signal. Each
// chunk is framed with the filename and a 1-based part marker before being
// added to mem.
func (in *Ingestor) Ingest(filename string, mem memory.Memory, maxLength, overlap int) {
	in.logger.Printf("Working with file %s", filename)

	content, err := in.store.Read(filename)
	if err != nil {
		in.logger.Printf("Error while ingesting file '%s': %v", filename, err)
		return
	}
	in.logger.Printf("File length: %d characters", len(content))

	chunks, err := chunker.Split(content, maxLength, overlap)
	if err != nil {
		in.logger.Printf("Error while ingesting file '%s': %v", filename, err)
		return
	}

	numChunks := len(chunks)
	for i, chunk := range chunks {
		in.logger.Printf("Ingesting chunk %d / %d into memory", i+1, numChunks)
		entry := fmt.Sprintf("Filename: %s\nContent part#%d/%d: %s", filename, i+1, numChunks, chunk)

		if err := mem.Add(entry); err != nil {
			in.logger.Printf("Error while ingesting file '%s': %v", filename, err)
			return
		}
	}

	in.logger.Printf("Done ingesting %d chunks from %s.", numChunks, filename)
}
