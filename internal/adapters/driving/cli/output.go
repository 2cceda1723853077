package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
)

// printer renders command output, styled only when writing to a terminal.
type printer struct {
	out    io.Writer
	styled bool
	styles *styles.Styles
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStdout()
	return &printer{
		out:    out,
		styled: isTerminal(out),
		styles: styles.DefaultStyles(),
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) title(s string) string {
	if !p.styled {
		return s
	}
	return p.styles.Title.Render(s)
}

func (p *printer) success(s string) string {
	if !p.styled {
		return s
	}
	return p.styles.Success.Render(s)
}

func (p *printer) failure(s string) string {
	if !p.styled {
		return s
	}
	return p.styles.Error.Render(s)
}

func (p *printer) muted(s string) string {
	if !p.styled {
		return s
	}
	return p.styles.Muted.Render(s)
}

// markdown styles a Markdown report line by line.
// Plain output is returned unchanged.
func (p *printer) markdown(text string) string {
	if !p.styled {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = p.styles.ReportLine(line)
	}
	return strings.Join(lines, "\n")
}
