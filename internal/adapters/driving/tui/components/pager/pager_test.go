package pager

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestPager_FitsWithoutIndicator(t *testing.T) {
	p := New(nil)
	p.SetHeight(10)
	p.SetContent("a\nb\n")

	assert.Equal(t, 2, p.LineCount())
	assert.Equal(t, "a\nb", p.View())
}

func TestPager_Scrolls(t *testing.T) {
	p := New(nil)
	p.SetHeight(3)
	p.SetContent(numbered(10))

	p.ScrollDown(2)
	assert.Equal(t, 2, p.Offset())
	view := p.View()
	assert.True(t, strings.HasPrefix(view, "line 3\nline 4\nline 5"))
	assert.Contains(t, view, "[3-5 of 10]")

	p.ScrollUp(5)
	assert.Equal(t, 0, p.Offset())
}

func TestPager_ClampsAtEnd(t *testing.T) {
	p := New(nil)
	p.SetHeight(4)
	p.SetContent(numbered(6))

	p.ScrollDown(100)

	assert.Equal(t, 2, p.Offset())
}

func TestPager_SetContentResetsOffset(t *testing.T) {
	p := New(nil)
	p.SetHeight(2)
	p.SetContent(numbered(5))
	p.ScrollDown(2)

	p.SetLines([]string{"x", "y", "z"})

	assert.Equal(t, 0, p.Offset())
}

func TestPager_GrowingHeightClampsOffset(t *testing.T) {
	p := New(nil)
	p.SetHeight(2)
	p.SetContent(numbered(5))
	p.ScrollDown(3)

	p.SetHeight(10)

	assert.Equal(t, 0, p.Offset())
}

func TestPager_MinimumHeight(t *testing.T) {
	p := New(nil)
	p.SetHeight(0)
	p.SetContent(numbered(3))

	assert.True(t, strings.HasPrefix(p.View(), "line 1\n"))
}
