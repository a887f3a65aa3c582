package worktree

import (
	"context"
	"fmt"
	"slices"

	"github.com/raphi011/gww/internal/log"
)

// Picker lets the user choose one candidate interactively.
// A nil candidate with a nil error means the user cancelled.
type Picker interface {
	Pick(ctx context.Context, prompt string, candidates []Candidate) (*Candidate, error)
}

const (
	checkoutPrompt = "Select branch"
	removePrompt   = "Select worktree"
)

// Select picks the candidate for an explicit name, or asks picker when name
// is empty. An explicit name matches a candidate's Name first, then its
// remote-tracking refs, in which case the matched ref becomes the candidate's
// RemoteRef. With create set, an unmatched name yields a fresh
// candidate that exists nowhere yet.
func Select(ctx context.Context, candidates []Candidate, name string, create bool, picker Picker) (Candidate, error) {
	if name == "" {
		if len(candidates) == 0 {
			return Candidate{}, withDetail(ErrBranchNotFound, "no branches found")
		}
		return pick(ctx, picker, checkoutPrompt, candidates)
	}

	if c, ok := findExact(candidates, name); ok {
		return c, nil
	}
	if create {
		return Candidate{Name: name}, nil
	}
	return Candidate{}, withDetail(ErrBranchNotFound,
		fmt.Sprintf("branch %q not found (use -b to create it)", name))
}

func findExact(candidates []Candidate, name string) (Candidate, bool) {
	for _, c := range candidates {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range candidates {
		if slices.Contains(c.RemoteRefs, name) {
			c.RemoteRef = name
			return c, true
		}
	}
	return Candidate{}, false
}

// pick runs the picker. Cancellation and picker failures both end the
// selection without side effects; failures are reported as warnings.
func pick(ctx context.Context, picker Picker, prompt string, candidates []Candidate) (Candidate, error) {
	l := log.FromContext(ctx)
	if picker == nil {
		l.Warnf("no interactive picker available, pass a branch name")
		return Candidate{}, ErrSelectionCancelled
	}

	c, err := picker.Pick(ctx, prompt, candidates)
	if err != nil {
		l.Warnf("picker failed: %v", err)
		return Candidate{}, ErrSelectionCancelled
	}
	if c == nil {
		return Candidate{}, ErrSelectionCancelled
	}
	l.Debug("picked", "branch", c.Name)
	return *c, nil
}
