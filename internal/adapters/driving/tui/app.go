package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/messages"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/views/process"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/views/record"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/views/records"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/views/summary"
)

// App is the main TUI application following the Elm architecture.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap

	recordsView *records.View
	recordView  *record.View
	summaryView *summary.View
	processView *process.View

	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application. Service calls made by the views
// use ctx.
func NewApp(ctx context.Context, ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		styles:      s,
		keymap:      km,
		recordsView: records.NewView(ctx, s, km, ports.Analyzer),
		recordView:  record.NewView(s, km),
		summaryView: summary.NewView(ctx, s, km, ports.Analyzer),
		processView: process.NewView(ctx, s, km, ports.Analyzer),
		currentView: messages.ViewRecords,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("medreport"),
		a.recordsView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// The process prompt consumes printable keys.
		if a.currentView != messages.ViewProcess {
			switch {
			case key.Matches(msg, a.keymap.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keymap.Help):
				if a.currentView == messages.ViewHelp {
					a.currentView = messages.ViewRecords
				} else {
					a.currentView = messages.ViewHelp
				}
				return a, nil
			}
		}

		switch a.currentView {
		case messages.ViewRecords:
			a.recordsView, cmd = a.recordsView.Update(msg)
		case messages.ViewRecord:
			a.recordView, cmd = a.recordView.Update(msg)
		case messages.ViewSummary:
			a.summaryView, cmd = a.summaryView.Update(msg)
		case messages.ViewProcess:
			a.processView, cmd = a.processView.Update(msg)
		case messages.ViewHelp:
			if key.Matches(msg, a.keymap.Back) {
				a.currentView = messages.ViewRecords
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewRecords:
			return a, a.recordsView.Init()
		case messages.ViewSummary:
			return a, a.summaryView.Init()
		case messages.ViewProcess:
			return a, a.processView.Init()
		case messages.ViewRecord, messages.ViewHelp:
		}
		return a, nil

	case messages.RecordsLoaded:
		a.err = msg.Err
		a.recordsView, cmd = a.recordsView.Update(msg)
		return a, cmd

	case messages.RecordSelected:
		a.recordView.SetRecord(msg.Record)
		a.currentView = messages.ViewRecord
		return a, nil

	case messages.SummaryLoaded:
		a.err = msg.Err
		a.summaryView, cmd = a.summaryView.Update(msg)
		return a, cmd

	case messages.FileProcessed:
		a.err = msg.Err
		a.processView, cmd = a.processView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	if a.currentView == messages.ViewProcess {
		a.processView, cmd = a.processView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewRecord:
		return a.recordView.View()
	case messages.ViewSummary:
		return a.summaryView.View()
	case messages.ViewProcess:
		return a.processView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.recordsView.View()
	}
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.recordsView.SetDimensions(width, height)
	a.recordView.SetDimensions(width, height)
	a.summaryView.SetDimensions(width, height)
	a.processView.SetDimensions(width, height)
}
