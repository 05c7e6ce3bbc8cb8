package oplog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/computerscienceiscool/agent-workspace/internal/errors"
)

// Header is the fixed first line of the operation log file.
const Header = "File Operation Logger "

// Kind identifies a logged file operation.
type Kind string

const (
	KindWrite  Kind = "write"
	KindAppend Kind = "append"
	KindDelete Kind = "delete"
)

// Log is an append-only record of file operations, used to prevent repeat
// write and delete operations on the same filename. Entries are persisted
// one per line as "<kind>: <filename>" and are never rewritten or removed.
//
// On open the existing file is replayed into a structural map keyed by
// filename, so duplicate checks are exact lookups rather than substring
// scans. The design assumes a single active writer; no locking is applied.
type Log struct {
	path string
	seen map[string]map[Kind]bool
}

// Open replays the log at path into memory. A missing file means no
// entries; the file itself is created lazily, with its header line, on the
// first Record.
func Open(path string) (*Log, error) {
	l := &Log{
		path: path,
		seen: make(map[string]map[Kind]bool),
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("%w: cannot open operation log: %v", apperrors.ErrIOFailure, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		kind, filename, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		l.mark(kind, filename)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: cannot read operation log: %v", apperrors.ErrIOFailure, err)
	}

	return l, nil
}

// Has reports whether the given operation was already recorded for the
// exact filename.
func (l *Log) Has(kind Kind, filename string) bool {
	return l.seen[filename][kind]
}

// Record appends the entry to the log file and marks it in memory. The
// append is unconditional; duplicate checks are the caller's job.
func (l *Log) Record(kind Kind, filename string) error {
	fresh := false
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		fresh = true
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("%w: cannot open operation log: %v", apperrors.ErrIOFailure, err)
	}
	defer file.Close()

	if fresh {
		if _, err := fmt.Fprintln(file, Header); err != nil {
			return fmt.Errorf("%w: cannot write log header: %v", apperrors.ErrIOFailure, err)
		}
	}

	if _, err := fmt.Fprintf(file, "%s: %s\n", kind, filename); err != nil {
		return fmt.Errorf("%w: cannot append log entry: %v", apperrors.ErrIOFailure, err)
	}

	l.mark(kind, filename)
	return nil
}

// Path returns the on-disk location of the log file.
func (l *Log) Path() string {
	return l.path
}

func (l *Log) mark(kind Kind, filename string) {
	if l.seen[filename] == nil {
		l.seen[filename] = make(map[Kind]bool)
	}
	l.seen[filename][kind] = true
}

// parseLine splits one log line into its operation kind and filename.
// The header line, and any line that does not carry a known kind, is
// skipped. Logs written by older versions glued the header onto the first
// entry; the header prefix is stripped before parsing to stay compatible.
func parseLine(line string) (Kind, string, bool) {
	line = strings.TrimPrefix(line, Header)
	if line == "" {
		return "", "", false
	}

	kindText, filename, found := strings.Cut(line, ": ")
	if !found {
		return "", "", false
	}

	kind := Kind(kindText)
	switch kind {
	case KindWrite, KindAppend, KindDelete:
		return kind, filename, true
	}
	return "", "", false
}
