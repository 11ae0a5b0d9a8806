package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderResultLine styles a result green or red, clamped to width.
func renderResultLine(t Theme, r domain.CheckResult, width int) string {
	line := r.String()
	if width > 0 {
		line = clampString(line, width)
	}
	if r.IsWorking() {
		return t.Working.Render(line)
	}
	return t.Failed.Render(line)
}

func renderCounters(p domain.BatchProgress) string {
	return fmt.Sprintf("Processed %d/%d · Working %d · Not working %d",
		p.Processed, p.Total, p.Working, p.NotWorking)
}
