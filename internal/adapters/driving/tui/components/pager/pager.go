// Package pager provides a scrollable block of text for the TUI.
package pager

import (
	"fmt"
	"strings"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
)

// Pager shows a window of lines and scrolls through them.
type Pager struct {
	styles *styles.Styles
	lines  []string
	offset int
	height int
}

// New creates an empty pager.
func New(s *styles.Styles) *Pager {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Pager{styles: s, height: 1}
}

// SetContent replaces the text and scrolls to the top.
func (p *Pager) SetContent(text string) {
	p.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	p.offset = 0
}

// SetLines replaces the content with pre-split lines.
func (p *Pager) SetLines(lines []string) {
	p.lines = lines
	p.offset = 0
}

// SetHeight sets how many lines are visible at once.
func (p *Pager) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	p.height = height
	p.clamp()
}

// ScrollUp moves the window up by n lines.
func (p *Pager) ScrollUp(n int) {
	p.offset -= n
	p.clamp()
}

// ScrollDown moves the window down by n lines.
func (p *Pager) ScrollDown(n int) {
	p.offset += n
	p.clamp()
}

// Offset returns the index of the first visible line.
func (p *Pager) Offset() int {
	return p.offset
}

// LineCount returns the number of content lines.
func (p *Pager) LineCount() int {
	return len(p.lines)
}

// View renders the visible lines, with a position indicator when the
// content does not fit.
func (p *Pager) View() string {
	end := p.offset + p.height
	if end > len(p.lines) {
		end = len(p.lines)
	}

	var b strings.Builder
	b.WriteString(strings.Join(p.lines[p.offset:end], "\n"))
	if len(p.lines) > p.height {
		b.WriteString("\n")
		b.WriteString(p.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", p.offset+1, end, len(p.lines))))
	}
	return b.String()
}

func (p *Pager) clamp() {
	maxOffset := len(p.lines) - p.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
}
