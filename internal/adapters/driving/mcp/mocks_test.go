package mcp

import (
	"context"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// mockAnalyzerService is a mock implementation of driving.AnalyzerService.
type mockAnalyzerService struct {
	records  []domain.Record
	record   *domain.Record
	summary  domain.Summary
	text     string
	export   []byte
	err      error
	resetErr error

	gotName    string
	gotContent []byte
	gotFormat  domain.Format
	resetCalls int
}

func (m *mockAnalyzerService) ProcessFile(_ context.Context, name string, content []byte) (*domain.Record, error) {
	m.gotName = name
	m.gotContent = content
	return m.record, m.err
}

func (m *mockAnalyzerService) ProcessFileAs(
	_ context.Context,
	name string,
	content []byte,
	format domain.Format,
) (*domain.Record, error) {
	m.gotName = name
	m.gotContent = content
	m.gotFormat = format
	return m.record, m.err
}

func (m *mockAnalyzerService) ProcessBatch(_ context.Context, _ []domain.Upload) *domain.BatchReport {
	return &domain.BatchReport{}
}

func (m *mockAnalyzerService) Records(_ context.Context) ([]domain.Record, error) {
	return m.records, m.err
}

func (m *mockAnalyzerService) Record(_ context.Context, _ string) (*domain.Record, error) {
	return m.record, m.err
}

func (m *mockAnalyzerService) Summary(_ context.Context) (domain.Summary, error) {
	return m.summary, m.err
}

func (m *mockAnalyzerService) FormatSummary(_ context.Context) (string, error) {
	return m.text, m.err
}

func (m *mockAnalyzerService) ExportJSON(_ context.Context) ([]byte, error) {
	return m.export, m.err
}

func (m *mockAnalyzerService) ImportJSON(_ context.Context, _ []byte) (int, error) {
	return 0, m.err
}

func (m *mockAnalyzerService) Reset(_ context.Context) error {
	m.resetCalls++
	return m.resetErr
}

// mockPatternService is a mock implementation of driving.PatternService.
type mockPatternService struct {
	registry domain.PatternRegistry
	data     []byte
	err      error
}

func (m *mockPatternService) Current() domain.PatternRegistry { return m.registry }

func (m *mockPatternService) SetPattern(_ domain.Category, _ string) error { return m.err }

func (m *mockPatternService) Load(_ []byte) error { return m.err }

func (m *mockPatternService) Save() ([]byte, error) { return m.data, m.err }

func (m *mockPatternService) Validate() error { return m.err }

func (m *mockPatternService) ResetDefaults() error { return m.err }
