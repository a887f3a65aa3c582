package worktree

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gww/internal/git"
)

func at(sec int64) time.Time { return time.Unix(sec, 0) }

func names(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func sampleInventory() ([]git.Worktree, []git.Branch) {
	worktrees := []git.Worktree{
		{Path: "/src/repo", Branch: "main"},
		{Path: "/wt/repo/feature/a", Branch: "feature/a"},
		{Path: "/wt/repo/detached", Detached: true},
		{Path: "/src/repo.git", Bare: true},
	}
	branches := []git.Branch{
		{Name: "main", Committed: at(100), Author: "Ann", Subject: "init"},
		{Name: "feature/a", Committed: at(300), Author: "Bob", Subject: "a"},
		{Name: "stale", Committed: at(50), Author: "Cy", Subject: "old"},
		{Name: "origin/main", Remote: "origin", Committed: at(100), Author: "Ann", Subject: "init"},
		{Name: "origin/remote-only", Remote: "origin", Committed: at(200), Author: "Dee", Subject: "r"},
		{Name: "upstream/remote-only", Remote: "upstream", Committed: at(150), Author: "Eve", Subject: "u"},
	}
	return worktrees, branches
}

func TestRank_Sample(t *testing.T) {
	t.Parallel()

	worktrees, branches := sampleInventory()
	got := Rank(worktrees, branches, nil)

	assert.Equal(t, []string{"feature/a", "remote-only", "main", "stale"}, names(got))

	byName := map[string]Candidate{}
	for _, c := range got {
		byName[c.Name] = c
	}

	main := byName["main"]
	assert.True(t, main.HasWorktree)
	assert.Equal(t, "/src/repo", main.WorktreePath)
	assert.True(t, main.HasLocal)
	assert.Equal(t, "origin/main", main.RemoteRef)
	assert.Equal(t, byte('T'), main.Source())

	ro := byName["remote-only"]
	assert.False(t, ro.HasWorktree)
	assert.False(t, ro.HasLocal)
	assert.Equal(t, "origin/remote-only", ro.RemoteRef, "default remote is preferred")
	assert.Equal(t, []string{"origin/remote-only", "upstream/remote-only"}, ro.RemoteRefs)
	assert.Equal(t, at(200), ro.LastUsed)
	assert.Equal(t, "Dee", ro.Author)
	assert.Equal(t, byte('R'), ro.Source())

	stale := byName["stale"]
	assert.Equal(t, byte('L'), stale.Source())
	assert.Empty(t, stale.RemoteRef)
}

func TestRank_SkipsBareAndDetached(t *testing.T) {
	t.Parallel()

	got := Rank([]git.Worktree{
		{Path: "/src/repo.git", Bare: true},
		{Path: "/wt/x", Detached: true, Head: "abc"},
		{Path: "/wt/y"},
	}, nil, nil)

	assert.Empty(t, got)
}

func TestRank_SkipsPrunableWorktree(t *testing.T) {
	t.Parallel()

	got := Rank(
		[]git.Worktree{{Path: "/wt/repo/gone", Branch: "gone", Prunable: true, PruneReason: "gitdir file points to non-existent location"}},
		[]git.Branch{{Name: "gone", Committed: at(100)}},
		map[string]time.Time{"/wt/repo/gone": at(900)},
	)

	require.Len(t, got, 1)
	assert.False(t, got[0].HasWorktree)
	assert.Empty(t, got[0].WorktreePath)
	assert.True(t, got[0].HasLocal)
	assert.Equal(t, at(100), got[0].LastUsed)
}

func TestRank_CollapsesRemotePrefixedWorktree(t *testing.T) {
	t.Parallel()

	got := Rank(
		[]git.Worktree{{Path: "/wt/repo/origin/main", Branch: "origin/main"}},
		[]git.Branch{{Name: "main", Committed: at(500), Author: "Ann", Subject: "newer"}},
		map[string]time.Time{"/wt/repo/origin/main": at(100)},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "main", got[0].Name)
	assert.Equal(t, at(500), got[0].LastUsed)
	assert.True(t, got[0].HasWorktree)
	assert.True(t, got[0].HasLocal)
}

func TestRank_AccessTime(t *testing.T) {
	t.Parallel()

	worktrees := []git.Worktree{
		{Path: "/wt/repo/old", Branch: "old"},
		{Path: "/wt/repo/new", Branch: "new"},
	}
	branches := []git.Branch{
		{Name: "old", Committed: at(10)},
		{Name: "new", Committed: at(20)},
	}

	t.Run("falls back to commit time", func(t *testing.T) {
		t.Parallel()
		got := Rank(worktrees, branches, nil)
		assert.Equal(t, []string{"new", "old"}, names(got))
	})

	t.Run("access time wins when newer", func(t *testing.T) {
		t.Parallel()
		got := Rank(worktrees, branches, map[string]time.Time{"/wt/repo/old": at(1000)})
		assert.Equal(t, []string{"old", "new"}, names(got))
		assert.Equal(t, at(1000), got[0].LastUsed)
	})

	t.Run("older access time does not hide commit", func(t *testing.T) {
		t.Parallel()
		got := Rank(worktrees, branches, map[string]time.Time{"/wt/repo/new": at(1)})
		assert.Equal(t, at(20), got[0].LastUsed)
	})
}

func TestRank_TimestampLessLast(t *testing.T) {
	t.Parallel()

	got := Rank(
		[]git.Worktree{
			{Path: "/wt/zeta", Branch: "zeta"},
			{Path: "/wt/alpha", Branch: "alpha"},
		},
		[]git.Branch{{Name: "dated", Committed: at(1)}},
		nil,
	)

	assert.Equal(t, []string{"dated", "alpha", "zeta"}, names(got))
	assert.True(t, got[1].LastUsed.IsZero())
}

func TestRank_TiesByName(t *testing.T) {
	t.Parallel()

	got := Rank(nil, []git.Branch{
		{Name: "b", Committed: at(7)},
		{Name: "c", Committed: at(7)},
		{Name: "a", Committed: at(7)},
	}, nil)

	assert.Equal(t, []string{"a", "b", "c"}, names(got))
}

func TestRank_LocalMetadataPreferredOnTie(t *testing.T) {
	t.Parallel()

	got := Rank(nil, []git.Branch{
		{Name: "origin/x", Remote: "origin", Committed: at(7), Author: "remote", Subject: "r"},
		{Name: "x", Committed: at(7), Author: "local", Subject: "l"},
	}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "local", got[0].Author)
}

func TestRank_UnknownRemotePrefixKept(t *testing.T) {
	t.Parallel()

	got := Rank(nil, []git.Branch{
		{Name: "feature/x", Committed: at(1)},
		{Name: "x", Committed: at(2)},
	}, nil)

	assert.Equal(t, []string{"x", "feature/x"}, names(got))
}

// TestRank_Invariants checks dedup, ordering and input-order independence
// over shuffled inputs.
func TestRank_Invariants(t *testing.T) {
	t.Parallel()

	worktrees, branches := sampleInventory()
	worktrees = append(worktrees,
		git.Worktree{Path: "/wt/repo/dup", Branch: "dup"},
		git.Worktree{Path: "/wt/repo/origin/dup", Branch: "origin/dup"},
		git.Worktree{Path: "/wt/repo/nodate", Branch: "nodate"},
	)
	branches = append(branches,
		git.Branch{Name: "dup", Committed: at(300)},
		git.Branch{Name: "origin/dup", Remote: "origin", Committed: at(310)},
		git.Branch{Name: "tie-b", Committed: at(300)},
		git.Branch{Name: "upstream/only-up", Remote: "upstream", Committed: at(5)},
	)
	access := map[string]time.Time{"/wt/repo/feature/a": at(250)}

	want := Rank(worktrees, branches, access)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		wts := slices.Clone(worktrees)
		brs := slices.Clone(branches)
		rng.Shuffle(len(wts), func(i, j int) { wts[i], wts[j] = wts[j], wts[i] })
		rng.Shuffle(len(brs), func(i, j int) { brs[i], brs[j] = brs[j], brs[i] })

		got := Rank(wts, brs, access)
		require.Equal(t, want, got, "ranking must not depend on input order")

		seen := map[string]bool{}
		for _, c := range got {
			assert.False(t, seen[c.Name], "duplicate candidate %q", c.Name)
			seen[c.Name] = true
		}

		for j := 1; j < len(got); j++ {
			prev, cur := got[j-1], got[j]
			switch {
			case prev.LastUsed.IsZero():
				assert.True(t, cur.LastUsed.IsZero(), "dated %q after undated %q", cur.Name, prev.Name)
				assert.Less(t, prev.Name, cur.Name)
			case cur.LastUsed.IsZero():
			case prev.LastUsed.Equal(cur.LastUsed):
				assert.Less(t, prev.Name, cur.Name)
			default:
				assert.True(t, prev.LastUsed.After(cur.LastUsed), "%q before %q", prev.Name, cur.Name)
			}
		}
	}

	byName := map[string]Candidate{}
	for _, c := range want {
		byName[c.Name] = c
	}
	assert.Equal(t, "/wt/repo/dup", byName["dup"].WorktreePath, "exact branch worktree wins")
	assert.Equal(t, at(310), byName["dup"].LastUsed)
	assert.Equal(t, "upstream/only-up", byName["only-up"].RemoteRef)
}
