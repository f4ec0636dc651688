package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Script is one resolved input source with the name used in diagnostics.
type Script struct {
	Name string
	r    io.Reader
}

// Text reads the entire script source.
func (s Script) Text() (string, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return "", err
	}

	if c, ok := s.r.(io.Closer); ok {
		c.Close()
	}

	return string(data), nil
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinScript is the special path indicator for reading from stdin.
const stdinScript = "-"

// ExpandScripts resolves the given paths into unique readable scripts,
// preserving order.
//
// The function deduplicates by resolving symlinks and comparing device/
// inode pairs, so the same script named twice (or through a symlink)
// runs only once. All occurrences of "-" are replaced with a single
// stdin script placed last so it reads after all regular files.
func ExpandScripts(paths []string) ([]Script, error) {
	scripts := make([]Script, 0, len(paths))
	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, path := range paths {
		if path == stdinScript {
			seen[stdinKey] = struct{}{}

			continue
		}

		reader, ok, err := openUniqueFile(path, seen)
		if err != nil {
			return nil, ErrReadScript.Wrap(err)
		}

		if !ok {
			continue
		}

		scripts = append(scripts, Script{Name: path, r: reader})
	}

	// Stdin may have been included via "-" or as a named device file.
	// Both are represented by stdinKey in seen.
	if _, hasStdin := seen[stdinKey]; hasStdin {
		scripts = append(scripts, Script{Name: "<stdin>", r: os.Stdin})
	}

	return scripts, nil
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
// Returns ok=false without error when the file is a duplicate.
func openUniqueFile(
	path string,
	seen map[fileKey]struct{},
) (io.Reader, bool, error) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}

	// Resolve symlinks to their target.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false, err
	}

	// Get file info to extract device and inode.
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false, err
	}

	key, ok := makeFileKey(info)
	if ok {
		if _, exists := seen[key]; exists {
			return nil, false, nil
		}

		seen[key] = struct{}{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false, err
	}

	return file, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: stat.Dev, ino: stat.Ino}, true
}
