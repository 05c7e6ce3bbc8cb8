package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/computerscienceiscool/agent-workspace/internal/errors"
	"github.com/computerscienceiscool/agent-workspace/internal/oplog"
	"github.com/computerscienceiscool/agent-workspace/internal/sandbox"
)

// Store is the working-directory-confined file-operation surface exposed
// to the agent. All paths resolve relative to a single root (when
// restriction is enabled), and write/delete operations are deduplicated
// through an append-only operation log kept at the top of the root.
//
// The store assumes a single active agent process; concurrent writers are
// not coordinated.
type Store struct {
	root  string
	guard *sandbox.Guard
	log   *oplog.Log
}

// New creates a store rooted at root, creating the directory if absent.
// The root is injected rather than read from process-wide state so tests
// can use temporary directories.
func New(root string, restricted bool, logFilename string) (*Store, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve workspace root: %w", err)
	}

	if err := os.MkdirAll(absRoot, 0755); err != nil {
		return nil, fmt.Errorf("cannot create workspace root: %w", err)
	}

	log, err := oplog.Open(filepath.Join(absRoot, logFilename))
	if err != nil {
		return nil, err
	}

	return &Store{
		root:  absRoot,
		guard: sandbox.NewGuard(absRoot, restricted),
		log:   log,
	}, nil
}

// Root returns the absolute workspace root.
func (s *Store) Root() string {
	return s.root
}

// Log exposes the operation log, mainly for callers that need to inspect
// recorded operations.
func (s *Store) Log() *oplog.Log {
	return s.log
}

// Read returns the full contents of the named file.
func (s *Store) Read(filename string) (string, error) {
	path, err := s.guard.Resolve(filename)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify("read", filename, err)
	}
	return string(data), nil
}

// Write overwrites the named file with text, creating parent directories
// as needed. A file that already has a "write" entry in the operation log
// can never be written again for the lifetime of that log, even after an
// intervening delete; this is a deliberate, blunt idempotency guard.
func (s *Store) Write(filename, text string) error {
	if s.log.Has(oplog.KindWrite, filename) {
		return &apperrors.OperationError{
			Op:   "write",
			Path: filename,
			Err:  fmt.Errorf("%w: file has already been written", apperrors.ErrDuplicateOperation),
		}
	}

	path, err := s.guard.Resolve(filename)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return classify("write", filename, err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return classify("write", filename, err)
	}

	return s.log.Record(oplog.KindWrite, filename)
}

// Append appends text to the named file, creating the file if absent. It
// is always permitted and carries no duplicate check. Unlike Write it does
// NOT create parent directories; a missing parent fails the operation.
// The asymmetry is intentional policy, kept explicit rather than silently
// unified.
func (s *Store) Append(filename, text string) error {
	path, err := s.guard.Resolve(filename)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return classify("append", filename, err)
	}
	defer file.Close()

	if _, err := file.WriteString(text); err != nil {
		return classify("append", filename, err)
	}

	return s.log.Record(oplog.KindAppend, filename)
}

// Delete removes the named file. A second delete for the same filename
// fails with a duplicate-operation error without touching the filesystem.
// File existence is not checked up front; a failed removal surfaces as an
// I/O error.
func (s *Store) Delete(filename string) error {
	if s.log.Has(oplog.KindDelete, filename) {
		return &apperrors.OperationError{
			Op:   "delete",
			Path: filename,
			Err:  fmt.Errorf("%w: file has already been deleted", apperrors.ErrDuplicateOperation),
		}
	}

	path, err := s.guard.Resolve(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return classify("delete", filename, err)
	}

	return s.log.Record(oplog.KindDelete, filename)
}

// Search walks the subtree rooted at directory ("" and "/" both mean the
// whole workspace) and returns paths relative to the workspace root in
// walk order. Dot-prefixed files are skipped, as are dot-prefixed
// directories. A directory that does not exist yields an empty result,
// not an error. Results are recomputed on every call.
func (s *Store) Search(directory string) ([]string, error) {
	var searchRoot string
	if directory == "" || directory == "/" {
		searchRoot = s.root
	} else {
		path, err := s.guard.Resolve(directory)
		if err != nil {
			return nil, err
		}
		searchRoot = path
	}

	if _, err := os.Stat(searchRoot); os.IsNotExist(err) {
		return nil, nil
	}

	var found []string
	err := filepath.Walk(searchRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		hidden := strings.HasPrefix(info.Name(), ".")
		if info.IsDir() {
			if hidden && path != searchRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, classify("search", directory, err)
	}

	return found, nil
}

// classify maps a raw filesystem error onto the store's error taxonomy.
func classify(op, path string, err error) error {
	var kind error
	switch {
	case os.IsNotExist(err):
		kind = apperrors.ErrFileNotFound
	case os.IsPermission(err):
		kind = apperrors.ErrPermissionDenied
	default:
		kind = apperrors.ErrIOFailure
	}

	return &apperrors.OperationError{
		Op:   op,
		Path: path,
		Err:  fmt.Errorf("%w: %v", kind, err),
	}
}
