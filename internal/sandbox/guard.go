package sandbox

import (
	"fmt"
	"path/filepath"
	"strings"

	apperrors "github.com/computerscienceiscool/agent-workspace/internal/errors"
)

// Guard resolves agent-supplied path segments against a fixed workspace root.
// It performs pure path computation and never touches the filesystem.
type Guard struct {
	Root       string
	Restricted bool
}

// NewGuard creates a guard for the given root. The root should already be
// an absolute, cleaned path.
func NewGuard(root string, restricted bool) *Guard {
	return &Guard{
		Root:       filepath.Clean(root),
		Restricted: restricted,
	}
}

// Resolve joins the segments onto the workspace root and normalizes the
// result. In restricted mode any resolution that would land outside the
// root (via ".." or an absolute segment) is rejected before any I/O
// occurs. In unrestricted mode segments resolve against the filesystem
// root instead; paths are treated as filesystem-absolute and are not
// sandboxed at all.
func (g *Guard) Resolve(segments ...string) (string, error) {
	if !g.Restricted {
		return filepath.Join("/", filepath.Join(segments...)), nil
	}

	for _, segment := range segments {
		if filepath.IsAbs(segment) {
			return "", &apperrors.SecurityError{
				Path: segment,
				Err:  fmt.Errorf("%w: absolute path not allowed in restricted mode", apperrors.ErrPathEscape),
			}
		}
	}

	resolved := filepath.Join(append([]string{g.Root}, segments...)...)
	if !g.contains(resolved) {
		return "", &apperrors.SecurityError{
			Path: filepath.Join(segments...),
			Err:  fmt.Errorf("%w: attempted to access outside of working directory", apperrors.ErrPathEscape),
		}
	}

	return resolved, nil
}

// contains reports whether path sits at or below the guard root. Prefix
// matching is done on whole path components so a sibling like "/ws2" does
// not pass for root "/ws".
func (g *Guard) contains(path string) bool {
	if path == g.Root {
		return true
	}
	return strings.HasPrefix(path, g.Root+string(filepath.Separator))
}
