// Package picker provides the interactive fuzzy branch picker.
//
// The picker draws on stderr so stdout stays free for the auto-cd line.
// It refuses to start when stdin or stderr is not a terminal.
package picker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/gww/internal/worktree"
)

// ErrNoTerminal is returned when the picker has no terminal to draw on.
var ErrNoTerminal = errors.New("interactive selection requires a terminal")

// Picker is a bubbletea-backed worktree.Picker.
type Picker struct {
	In       *os.File
	Out      *os.File
	NoColour bool
}

// New creates a picker reading keys from in and drawing on out.
func New(in, out *os.File, noColour bool) *Picker {
	return &Picker{In: in, Out: out, NoColour: noColour}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Pick shows candidates in their given order and returns the chosen one.
// A nil candidate with a nil error means the user cancelled.
func (p *Picker) Pick(ctx context.Context, prompt string, candidates []worktree.Candidate) (*worktree.Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if !isTerminal(p.In) || !isTerminal(p.Out) {
		return nil, ErrNoTerminal
	}

	m := newModel(prompt, candidates, time.Now())

	profile := colorprofile.Detect(p.Out, os.Environ())
	if p.NoColour {
		profile = colorprofile.Ascii
	}
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
		tea.WithColorProfile(profile),
	)

	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, nil
		}
		return nil, fmt.Errorf("picker: %w", err)
	}
	return final.(*model).choice(), nil
}
