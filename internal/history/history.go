// Package history records when gww last checked out each worktree.
// The access times feed the recency ordering of the branch picker.
//
// The history file is shared by every shell running gww, so all
// read-modify-write cycles hold an exclusive lock on "<file>.lock".
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gofrs/flock"

	"github.com/raphi011/gww/internal/storage"
)

// maxEntries caps the history size; the least recently used entries are evicted.
const maxEntries = 500

// Entry is one worktree access record.
type Entry struct {
	Path        string    `json:"path"`
	RepoName    string    `json:"repo_name"`
	Branch      string    `json:"branch"`
	AccessCount int       `json:"access_count"`
	LastAccess  time.Time `json:"last_access"`
}

// History is the on-disk access history.
type History struct {
	Entries []Entry `json:"entries"`
}

// DefaultPath returns the default history file location.
func DefaultPath() string {
	dir, err := storage.Dir()
	if err != nil {
		dir = filepath.Join(os.TempDir(), ".gww")
	}
	return filepath.Join(dir, "history.json")
}

// Load reads the history from file. A missing file is an empty history.
func Load(file string) (*History, error) {
	var h History
	if err := storage.LoadJSON(file, &h); err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("invalid history file %s: %w", file, err)
	}
	return &h, nil
}

// Save writes the history to file atomically.
func (h *History) Save(file string) error {
	return storage.SaveJSON(file, h)
}

// FindByPath returns the entry for path, or nil.
func (h *History) FindByPath(path string) *Entry {
	for i := range h.Entries {
		if h.Entries[i].Path == path {
			return &h.Entries[i]
		}
	}
	return nil
}

// RemoveByPath drops the entry for path and reports whether one existed.
func (h *History) RemoveByPath(path string) bool {
	n := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool { return e.Path == path })
	return len(h.Entries) != n
}

// RemoveStale drops entries whose directory no longer exists and
// returns how many were removed.
func (h *History) RemoveStale() int {
	n := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool {
		_, err := os.Stat(e.Path)
		return os.IsNotExist(err)
	})
	return n - len(h.Entries)
}

// SortByRecency orders entries most recent first.
func (h *History) SortByRecency() {
	slices.SortStableFunc(h.Entries, func(a, b Entry) int {
		return b.LastAccess.Compare(a.LastAccess)
	})
}

// touch records an access to path at now, evicting the oldest entries above the cap.
func (h *History) touch(path, repoName, branch string, now time.Time) {
	if e := h.FindByPath(path); e != nil {
		e.RepoName = repoName
		e.Branch = branch
		e.AccessCount++
		e.LastAccess = now
	} else {
		h.Entries = append(h.Entries, Entry{
			Path:        path,
			RepoName:    repoName,
			Branch:      branch,
			AccessCount: 1,
			LastAccess:  now,
		})
	}

	if len(h.Entries) > maxEntries {
		h.SortByRecency()
		h.Entries = h.Entries[:maxEntries]
	}
}

// update runs fn on the history in file while holding the file lock and
// saves the result.
func update(file string, fn func(h *History)) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}

	fl := flock.New(file + ".lock")
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("failed to lock history: %w", err)
	}
	defer func() { _ = fl.Unlock() }()

	h, err := Load(file)
	if err != nil {
		// unreadable history is replaced rather than blocking every checkout
		h = &History{}
	}
	fn(h)
	return h.Save(file)
}

// RecordAccess records an access to the worktree at path.
func RecordAccess(path, repoName, branch, file string) error {
	now := time.Now()
	return update(file, func(h *History) {
		h.touch(path, repoName, branch, now)
	})
}

// Forget removes the worktree at path from the history, together with
// entries whose directories are gone.
func Forget(path, file string) error {
	return update(file, func(h *History) {
		h.RemoveByPath(path)
		h.RemoveStale()
	})
}
