package localstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// tmpSuffix marks in-flight writes so watchers can ignore them.
const tmpSuffix = ".tmp"

// File is a file-backed Store. Each key is stored as a single file
// under the state directory. Writes are atomic (temp file + rename),
// so concurrent processes never observe partial values.
type File struct {
	dir string
}

// NewFile creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFile(dir string) (*File, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("localstore: state directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("localstore: create state dir: %w", err)
	}
	return &File{dir: dir}, nil
}

// Dir returns the state directory.
func (f *File) Dir() string {
	return f.dir
}

// Get returns the value for a key.
func (f *File) Get(key string) ([]byte, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("localstore: read %q: %w", key, err)
	}
	return data, nil
}

// Set writes a value atomically.
func (f *File) Set(key string, value []byte) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, "."+key+"-*"+tmpSuffix)
	if err != nil {
		return fmt.Errorf("localstore: create temp for %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("localstore: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: close temp for %q: %w", key, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: chmod %q: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: rename %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (f *File) Delete(key string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: delete %q: %w", key, err)
	}
	return nil
}

// Watch emits an event for every mutation of the state directory,
// including mutations made by other processes. Temp files from
// in-flight atomic writes are filtered out.
func (f *File) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("localstore: create watcher: %w", err)
	}
	if err := watcher.Add(f.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("localstore: watch %q: %w", f.dir, err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(ev.Name)
				if strings.HasPrefix(key, ".") || strings.HasSuffix(key, tmpSuffix) {
					continue
				}
				var op Op
				switch {
				case ev.Op.Has(fsnotify.Create), ev.Op.Has(fsnotify.Write), ev.Op.Has(fsnotify.Rename) && fileExists(filepath.Join(f.dir, key)):
					op = OpSet
				case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
					op = OpDelete
				default:
					continue
				}
				select {
				case out <- Event{Key: key, Op: op}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watch errors are not actionable for observers; the
				// next read of the store reflects current state anyway.
			}
		}
	}()
	return out, nil
}

// path maps a key to its backing file, rejecting keys that would
// escape the state directory.
func (f *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", ErrInvalidKey
	}
	return filepath.Join(f.dir, key), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var _ Store = (*File)(nil)
