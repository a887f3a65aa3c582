package picker

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gww/internal/format"
	"github.com/raphi011/gww/internal/ui/styles"
	"github.com/raphi011/gww/internal/worktree"
)

const maxVisible = 10

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "jump")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.PageUp, k.Select, k.Cancel}
}

// item is a candidate with its pre-rendered label.
type item struct {
	candidate worktree.Candidate
	label     string
	segments  []format.Segment
}

type itemSource []item

func (s itemSource) String(i int) string { return s[i].label }
func (s itemSource) Len() int            { return len(s) }

// model is the bubbletea model behind Picker. The filter is a text input;
// everything else typed goes to it.
type model struct {
	prompt   string
	items    []item
	input    textinput.Model
	help     help.Model
	filtered []fuzzy.Match
	cursor   int

	done      bool
	cancelled bool
	selected  int // index into items; -1 means no selection
}

func newModel(prompt string, candidates []worktree.Candidate, now time.Time) *model {
	items := make([]item, len(candidates))
	for i, c := range candidates {
		items[i] = item{
			candidate: c,
			label:     format.Label(c, now),
			segments:  format.Segments(c, now),
		}
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter"
	ti.Focus()

	m := &model{
		prompt:   prompt,
		items:    items,
		input:    ti,
		help:     help.New(),
		selected: -1,
	}
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.SetWidth(msg.Width)
		return m, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Select):
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.selected = m.filtered[m.cursor].Index
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, keys.PageUp):
			m.move(-maxVisible)
			return m, nil
		case key.Matches(msg, keys.PageDown):
			m.move(maxVisible)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = 0
		m.applyFilter()
	}
	return m, cmd
}

func (m *model) View() tea.View {
	if m.done || m.cancelled {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *model) render() string {
	var b strings.Builder
	b.WriteString(styles.PrimaryStyle.Render(m.prompt+":") + " " + m.input.View() + "\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.filtered[i]
		prefix := "  "
		if i == m.cursor {
			prefix = styles.AccentStyle.Render("> ")
		}
		b.WriteString(prefix + renderItem(m.items[match.Index], match.MatchedIndexes, i == m.cursor) + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.InfoStyle.Render("  No matching items") + "\n")
	}

	b.WriteString(m.help.ShortHelpView(keys.ShortHelp()) + "\n")
	return b.String()
}

// renderItem styles each label segment and highlights fuzzy-matched bytes.
func renderItem(it item, matched []int, selected bool) string {
	hit := make(map[int]bool, len(matched))
	for _, idx := range matched {
		hit[idx] = true
	}

	var b strings.Builder
	offset := 0
	for i, seg := range it.segments {
		if i > 0 {
			b.WriteByte(' ')
			offset++
		}
		style := segmentStyle(seg.Kind, selected)
		for j, r := range seg.Text {
			if hit[offset+j] {
				b.WriteString(styles.HighlightStyle.Render(string(r)))
			} else {
				b.WriteString(style.Render(string(r)))
			}
		}
		offset += len(seg.Text)
	}
	return b.String()
}

func segmentStyle(kind format.SegmentKind, selected bool) lipgloss.Style {
	switch kind {
	case format.SegmentTag:
		return styles.TagStyle
	case format.SegmentSubject:
		return styles.SubjectStyle
	case format.SegmentAuthor:
		return styles.AuthorStyle
	case format.SegmentTime:
		return styles.TimeStyle
	}
	if selected {
		return styles.AccentStyle
	}
	return styles.NormalStyle
}

func (m *model) applyFilter() {
	filter := m.input.Value()
	if filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.items))
		for i := range m.items {
			m.filtered[i] = fuzzy.Match{Str: m.items[i].label, Index: i}
		}
	} else {
		// sorted by score, best first
		m.filtered = fuzzy.FindFrom(filter, itemSource(m.items))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *model) move(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.filtered)-1)
}

// choice returns the selected candidate, or nil when the user cancelled.
func (m *model) choice() *worktree.Candidate {
	if m.cancelled || !m.done || m.selected < 0 {
		return nil
	}
	c := m.items[m.selected].candidate
	return &c
}
