package history

import "time"

// Log exposes a history file as the access log of the worktree engine.
// Reads come from a snapshot taken by Open; writes go straight to the
// file under its lock.
type Log struct {
	file     string
	snapshot *History
}

// Open loads the history in file. On error the returned Log is still
// usable with an empty snapshot.
func Open(file string) (*Log, error) {
	h, err := Load(file)
	if err != nil {
		return &Log{file: file, snapshot: &History{}}, err
	}
	return &Log{file: file, snapshot: h}, nil
}

// LastAccess returns when path was last checked out, or the zero time.
func (l *Log) LastAccess(path string) time.Time {
	if e := l.snapshot.FindByPath(path); e != nil {
		return e.LastAccess
	}
	return time.Time{}
}

// Record stores an access to the worktree at path.
func (l *Log) Record(path, repoName, branch string) error {
	return RecordAccess(path, repoName, branch, l.file)
}

// Forget drops path from the history.
func (l *Log) Forget(path string) error {
	return Forget(path, l.file)
}

// File returns the history file backing l.
func (l *Log) File() string {
	return l.file
}
