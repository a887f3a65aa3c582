package worktree

import (
	"slices"
	"strings"
	"time"

	"github.com/raphi011/gww/internal/git"
)

// defaultRemote is always treated as a known remote, even when no
// remote-tracking refs for it exist.
const defaultRemote = "origin"

// Candidate is one selectable branch, merged across worktrees, local
// branches and remote-tracking refs. Names are unique within a ranking.
type Candidate struct {
	Name         string
	HasWorktree  bool
	WorktreePath string
	LastUsed     time.Time // zero when no source had a timestamp
	HasLocal     bool
	RemoteRef    string   // preferred remote-tracking ref, e.g. "origin/feature"
	RemoteRefs   []string // every remote-tracking ref, RemoteRef first
	Current      bool
	Author       string
	Subject      string
}

// Source returns the strongest place the candidate exists:
// 'T' worktree, 'L' local branch, 'R' remote-tracking ref only.
func (c Candidate) Source() byte {
	switch {
	case c.HasWorktree:
		return 'T'
	case c.HasLocal:
		return 'L'
	default:
		return 'R'
	}
}

// rankEntry tracks merge bookkeeping that is not part of the result.
type rankEntry struct {
	Candidate
	exactWorktree bool      // WorktreePath came from a worktree whose branch equals Name
	metaAt        time.Time // commit time Author/Subject were taken from
	metaLocal     bool
	metaRef       string
	hasMeta       bool
}

// takesMeta reports whether b should supply Author and Subject: the newest
// commit wins, then a local branch, then the lexically smaller ref.
func (e *rankEntry) takesMeta(b git.Branch) bool {
	switch {
	case !e.hasMeta:
		return true
	case !b.Committed.Equal(e.metaAt):
		return b.Committed.After(e.metaAt)
	case b.IsRemote() != !e.metaLocal:
		return !b.IsRemote()
	}
	return b.Name < e.metaRef
}

func (e *rankEntry) touch(ts time.Time) {
	if ts.After(e.LastUsed) {
		e.LastUsed = ts
	}
}

// Rank merges worktree records and branch records into a deduplicated,
// recency-ordered candidate list. access maps worktree paths to their last
// access time; worktrees without one use the commit time of their branch.
//
// Output order is LastUsed descending, ties by name; candidates without a
// timestamp come last, by name. The result does not depend on input order.
func Rank(worktrees []git.Worktree, branches []git.Branch, access map[string]time.Time) []Candidate {
	remotes := knownRemotes(branches)

	localCommits := make(map[string]time.Time)
	for _, b := range branches {
		if !b.IsRemote() {
			localCommits[b.Name] = b.Committed
		}
	}

	entries := make(map[string]*rankEntry)
	get := func(name string) *rankEntry {
		e, ok := entries[name]
		if !ok {
			e = &rankEntry{Candidate: Candidate{Name: name}}
			entries[name] = e
		}
		return e
	}

	for _, wt := range worktrees {
		if wt.Bare || wt.Detached || wt.Prunable || wt.Branch == "" {
			continue
		}
		name := normalizeName(wt.Branch, remotes)
		e := get(name)

		exact := wt.Branch == name
		switch {
		case !e.HasWorktree,
			exact && !e.exactWorktree,
			exact == e.exactWorktree && wt.Path < e.WorktreePath:
			e.HasWorktree = true
			e.WorktreePath = wt.Path
			e.exactWorktree = exact
		}

		ts, ok := access[wt.Path]
		if !ok || ts.IsZero() {
			ts = localCommits[wt.Branch]
		}
		e.touch(ts)
	}

	for _, b := range branches {
		name := normalizeName(b.Name, remotes)
		e := get(name)

		if b.IsRemote() {
			e.RemoteRefs = append(e.RemoteRefs, b.Name)
		} else if b.Name == name {
			e.HasLocal = true
		}
		e.touch(b.Committed)

		if e.takesMeta(b) {
			e.Author = b.Author
			e.Subject = b.Subject
			e.metaAt = b.Committed
			e.metaLocal = !b.IsRemote()
			e.metaRef = b.Name
			e.hasMeta = true
		}
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		if len(e.RemoteRefs) > 0 {
			slices.SortFunc(e.RemoteRefs, compareRemoteRefs)
			e.RemoteRef = e.RemoteRefs[0]
		}
		candidates = append(candidates, e.Candidate)
	}
	slices.SortFunc(candidates, compareCandidates)
	return candidates
}

func compareCandidates(a, b Candidate) int {
	aZero, bZero := a.LastUsed.IsZero(), b.LastUsed.IsZero()
	switch {
	case aZero && !bZero:
		return 1
	case !aZero && bZero:
		return -1
	case !aZero && !a.LastUsed.Equal(b.LastUsed):
		return b.LastUsed.Compare(a.LastUsed)
	}
	return strings.Compare(a.Name, b.Name)
}

func knownRemotes(branches []git.Branch) map[string]bool {
	remotes := map[string]bool{defaultRemote: true}
	for _, b := range branches {
		if b.Remote != "" {
			remotes[b.Remote] = true
		}
	}
	return remotes
}

// normalizeName strips a leading "<known-remote>/" from name.
func normalizeName(name string, remotes map[string]bool) string {
	remote, rest, ok := strings.Cut(name, "/")
	if ok && rest != "" && remotes[remote] {
		return rest
	}
	return name
}

// compareRemoteRefs orders the refs of one candidate: the default remote
// first, then lexically.
func compareRemoteRefs(a, b string) int {
	aDefault := strings.HasPrefix(a, defaultRemote+"/")
	bDefault := strings.HasPrefix(b, defaultRemote+"/")
	switch {
	case aDefault && !bDefault:
		return -1
	case !aDefault && bDefault:
		return 1
	}
	return strings.Compare(a, b)
}
