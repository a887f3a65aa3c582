package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/raphi011/gww/internal/worktree"
)

// SegmentKind identifies a part of a candidate label.
type SegmentKind int

const (
	SegmentTag SegmentKind = iota
	SegmentName
	SegmentSubject
	SegmentAuthor
	SegmentTime
)

// Segment is one part of a rendered label.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Segments splits the label for c into its display parts.
func Segments(c worktree.Candidate, now time.Time) []Segment {
	marker := " "
	if c.Current {
		marker = "*"
	}

	subject := c.Subject
	if subject == "" {
		subject = "unknown subject"
	}
	author := c.Author
	if author == "" {
		author = "unknown author"
	}
	when := "unknown time"
	if !c.LastUsed.IsZero() {
		when = RelativeTimeFrom(c.LastUsed, now)
	}

	return []Segment{
		{SegmentTag, "[" + string(c.Source()) + marker + "]"},
		{SegmentName, c.Name},
		{SegmentSubject, fmt.Sprintf("%q", subject)},
		{SegmentAuthor, "[" + author + "]"},
		{SegmentTime, "(" + when + ")"},
	}
}

// Label returns the plain-text label for c.
func Label(c worktree.Candidate, now time.Time) string {
	segs := Segments(c, now)
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

// RelativeTime formats t relative to the current time.
func RelativeTime(t time.Time) string {
	return RelativeTimeFrom(t, time.Now())
}

// RelativeTimeFrom formats t relative to now: "just now", "30s ago", "5m ago",
// "3h ago", "yesterday", "2d ago", and a plain date from a week on.
func RelativeTimeFrom(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "yesterday"
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
