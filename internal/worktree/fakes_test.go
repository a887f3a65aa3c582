package worktree

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// fakeVCS serves canned listings and records mutating calls.
type fakeVCS struct {
	porcelain string
	raw       string
	refs      string
	current   string

	listErr   error
	addErr    error
	removeErr error
	subErr    error

	calls []string
}

func (f *fakeVCS) WorktreeListPorcelain(context.Context) (string, error) {
	return f.porcelain, f.listErr
}

func (f *fakeVCS) WorktreeListRaw(context.Context) (string, error) {
	return f.raw, f.listErr
}

func (f *fakeVCS) BranchRefs(context.Context) (string, error) {
	return f.refs, nil
}

func (f *fakeVCS) CurrentBranch(context.Context) (string, error) {
	return f.current, nil
}

func (f *fakeVCS) AddWorktree(_ context.Context, path, branch string) error {
	f.calls = append(f.calls, "add "+path+" "+branch)
	return f.addErr
}

func (f *fakeVCS) AddWorktreeNewBranch(_ context.Context, path, branch, start string) error {
	f.calls = append(f.calls, strings.TrimSpace("add -b "+branch+" "+path+" "+start))
	return f.addErr
}

func (f *fakeVCS) RemoveWorktree(_ context.Context, path string) error {
	f.calls = append(f.calls, "remove "+path)
	return f.removeErr
}

func (f *fakeVCS) UpdateSubmodules(_ context.Context, path string) error {
	f.calls = append(f.calls, "submodules "+path)
	return f.subErr
}

// porcelainRecord renders one `git worktree list --porcelain` record.
func porcelainRecord(path, branch string) string {
	return "worktree " + path + "\nHEAD 0123456789abcdef0123456789abcdef01234567\nbranch refs/heads/" + branch + "\n\n"
}

// refLine renders one for-each-ref line in the unit-separated format.
func refLine(ref string, committed int64, author, subject string) string {
	return strings.Join([]string{ref, strconv.FormatInt(committed, 10), author, subject}, "\x1f") + "\n"
}

// fakePicker returns a fixed answer and remembers what it was shown.
type fakePicker struct {
	choose func([]Candidate) *Candidate
	err    error

	calls  int
	prompt string
	shown  []Candidate
}

func (p *fakePicker) Pick(_ context.Context, prompt string, candidates []Candidate) (*Candidate, error) {
	p.calls++
	p.prompt = prompt
	p.shown = candidates
	if p.err != nil {
		return nil, p.err
	}
	if p.choose == nil {
		return nil, nil
	}
	return p.choose(candidates), nil
}

func pickNamed(name string) func([]Candidate) *Candidate {
	return func(cs []Candidate) *Candidate {
		for i := range cs {
			if cs[i].Name == name {
				return &cs[i]
			}
		}
		return nil
	}
}

// fakeAccessLog is an in-memory AccessLog.
type fakeAccessLog struct {
	times     map[string]time.Time
	recorded  []string
	forgotten []string
	err       error
}

func (a *fakeAccessLog) LastAccess(path string) time.Time {
	return a.times[path]
}

func (a *fakeAccessLog) Record(path, repo, branch string) error {
	a.recorded = append(a.recorded, repo+"/"+branch+"@"+path)
	return a.err
}

func (a *fakeAccessLog) Forget(path string) error {
	a.forgotten = append(a.forgotten, path)
	return a.err
}
