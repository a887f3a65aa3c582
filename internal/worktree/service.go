package worktree

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/raphi011/gww/internal/log"
)

// Options configures a Service. It is built once from configuration and
// passed in; the engine never reads the environment itself.
type Options struct {
	Root           string
	Repository     string
	InitSubmodules bool
}

// AccessLog records when worktrees were last used.
type AccessLog interface {
	LastAccess(path string) time.Time
	Record(path, repo, branch string) error
	Forget(path string) error
}

// Service ties inventory, ranking, selection and the orchestrators together.
type Service struct {
	opts   Options
	vcs    VCS
	picker Picker
	access AccessLog
}

// NewService creates a Service. picker and access may be nil.
func NewService(opts Options, vcs VCS, picker Picker, access AccessLog) *Service {
	return &Service{opts: opts, vcs: vcs, picker: picker, access: access}
}

// Candidates builds a fresh inventory and returns it ranked.
func (s *Service) Candidates(ctx context.Context) ([]Candidate, error) {
	inv, err := LoadInventory(ctx, s.vcs)
	if err != nil {
		return nil, err
	}

	for _, wt := range inv.Worktrees {
		if wt.Prunable {
			log.FromContext(ctx).Warnf("worktree %s is missing, run `git worktree prune`", wt.Path)
		}
	}

	access := make(map[string]time.Time)
	if s.access != nil {
		for _, wt := range inv.Worktrees {
			if t := s.access.LastAccess(wt.Path); !t.IsZero() {
				access[wt.Path] = t
			}
		}
	}

	candidates := Rank(inv.Worktrees, inv.Branches, access)
	if inv.Current != "" {
		current := normalizeName(inv.Current, knownRemotes(inv.Branches))
		for i := range candidates {
			candidates[i].Current = candidates[i].Name == current
		}
	}
	return candidates, nil
}

// ResolveAndCheckout selects a branch (picker when name is empty), ensures
// its worktree exists and returns the target and worktree path.
func (s *Service) ResolveAndCheckout(ctx context.Context, name string, create bool) (Target, string, error) {
	candidates, err := s.Candidates(ctx)
	if err != nil {
		return Target{}, "", err
	}

	c, err := Select(ctx, candidates, name, create, s.picker)
	if err != nil {
		return Target{}, "", err
	}

	target, err := s.target(c)
	if err != nil {
		return Target{}, "", err
	}
	log.FromContext(ctx).Debug("resolved target",
		"branch", target.Branch,
		"path", target.Path,
		"worktree", target.ExistsAsWorktree,
		"branch_exists", target.ExistsAsBranch,
		"start", target.StartPoint)

	path, err := Checkout(ctx, s.vcs, target, CheckoutOptions{InitSubmodules: s.opts.InitSubmodules})
	if err != nil {
		return target, "", err
	}

	// git lists worktrees by their resolved path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if s.access != nil {
		if err := s.access.Record(path, target.Repository, target.Branch); err != nil {
			log.FromContext(ctx).Warnf("failed to record access: %v", err)
		}
	}
	return target, path, nil
}

// ResolveAndRemove selects a worktree-backed branch and removes its worktree.
// Only worktree-backed candidates are offered or matched.
func (s *Service) ResolveAndRemove(ctx context.Context, name string) (Target, error) {
	candidates, err := s.Candidates(ctx)
	if err != nil {
		return Target{}, err
	}

	var withWorktree []Candidate
	for _, c := range candidates {
		if c.HasWorktree {
			withWorktree = append(withWorktree, c)
		}
	}

	var c Candidate
	switch {
	case name != "":
		var ok bool
		if c, ok = findExact(withWorktree, name); !ok {
			return Target{}, withDetail(ErrWorktreeNotFound,
				fmt.Sprintf("no worktree for branch %q", name))
		}
	case len(withWorktree) == 0:
		return Target{}, withDetail(ErrWorktreeNotFound, "no worktrees found")
	default:
		if c, err = pick(ctx, s.picker, removePrompt, withWorktree); err != nil {
			return Target{}, err
		}
	}

	target, err := s.target(c)
	if err != nil {
		return Target{}, err
	}
	if err := Remove(ctx, s.vcs, target); err != nil {
		return target, err
	}

	if s.access != nil {
		if err := s.access.Forget(target.Path); err != nil {
			log.FromContext(ctx).Warnf("failed to update history: %v", err)
		}
	}
	return target, nil
}

// RawList returns the tool's worktree listing verbatim.
func (s *Service) RawList(ctx context.Context) (string, error) {
	return RawList(ctx, s.vcs)
}

// target maps a selected candidate to where its worktree is or will be.
func (s *Service) target(c Candidate) (Target, error) {
	t := Target{
		Branch:           c.Name,
		Repository:       s.opts.Repository,
		ExistsAsWorktree: c.HasWorktree,
		ExistsAsBranch:   c.HasLocal,
	}
	if c.HasWorktree {
		t.Path = c.WorktreePath
		return t, nil
	}

	p, err := ResolvePath(s.opts.Root, s.opts.Repository, c.Name)
	if err != nil {
		return Target{}, err
	}
	t.Path = p.String()
	if !c.HasLocal {
		t.StartPoint = c.RemoteRef
	}
	return t, nil
}
