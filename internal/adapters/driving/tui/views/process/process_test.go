package process

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/messages"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// stubAnalyzer records ProcessFile calls. Other methods are unused here.
type stubAnalyzer struct {
	driving.AnalyzerService

	gotName    string
	gotContent []byte
	err        error
}

func (s *stubAnalyzer) ProcessFile(_ context.Context, name string, content []byte) (*domain.Record, error) {
	s.gotName = name
	s.gotContent = content
	if s.err != nil {
		return nil, s.err
	}
	findings := domain.NewFindings()
	findings[domain.CategoryVitals] = []string{"BP 120/80"}
	return &domain.Record{Name: name, Findings: findings, Metadata: domain.Metadata{WordCount: 3}}, nil
}

func newTestView(analyzer driving.AnalyzerService) *View {
	return NewView(context.Background(), styles.DefaultStyles(), keymap.DefaultKeyMap(), analyzer)
}

func TestView_ProcessesTypedPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitals.txt")
	require.NoError(t, os.WriteFile(path, []byte("Vitals: BP 120/80"), 0600))

	analyzer := &stubAnalyzer{}
	v := newTestView(analyzer)
	v.input.SetValue(path)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Contains(t, v.View(), "Processing...")

	msg := cmd()
	processed, ok := msg.(messages.FileProcessed)
	require.True(t, ok)
	require.NoError(t, processed.Err)
	assert.Equal(t, "vitals.txt", analyzer.gotName)
	assert.Equal(t, []byte("Vitals: BP 120/80"), analyzer.gotContent)

	v, _ = v.Update(processed)
	assert.Equal(t, "vitals.txt processed: 1 findings, 3 words", v.Result())
	assert.Equal(t, "", v.Value())
}

func TestView_MissingFile(t *testing.T) {
	v := newTestView(&stubAnalyzer{})
	v.input.SetValue(filepath.Join(t.TempDir(), "missing.pdf"))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	v, _ = v.Update(cmd())

	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "missing.pdf")
	assert.Contains(t, v.View(), "✗")
}

func TestView_AnalyzerError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xls")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	v := newTestView(&stubAnalyzer{err: domain.ErrUnsupportedFormat})
	v.input.SetValue(path)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(cmd())

	assert.True(t, errors.Is(v.Err(), domain.ErrUnsupportedFormat))
}

func TestView_EmptyPathIgnored(t *testing.T) {
	v := newTestView(&stubAnalyzer{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_EscGoesBack(t *testing.T) {
	v := newTestView(&stubAnalyzer{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewRecords}, cmd())
}

func TestView_InitClearsState(t *testing.T) {
	v := newTestView(&stubAnalyzer{})
	v.input.SetValue("old.txt")
	v.result = "done"

	v.Init()

	assert.Equal(t, "", v.Value())
	assert.Equal(t, "", v.Result())
}
