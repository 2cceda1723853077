package extractors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

type stubExtractor struct {
	format domain.Format
	text   string
	err    error
}

func (s *stubExtractor) Format() domain.Format { return s.format }

func (s *stubExtractor) Extract(_ context.Context, _ string, _ []byte) (*driven.ExtractResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &driven.ExtractResult{Text: s.text}, nil
}

func TestRegistry_Extract(t *testing.T) {
	r := NewRegistry(&stubExtractor{format: domain.FormatText, text: "hello"})

	result, err := r.Extract(context.Background(), domain.FormatText, "a.txt", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Text)
}

func TestRegistry_Extract_UnknownFormat(t *testing.T) {
	r := NewRegistry()

	_, err := r.Extract(context.Background(), domain.FormatPDF, "a.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRegistry_Extract_ErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unclassified wrapped", err: errors.New("boom"), want: domain.ErrExtractionFailure},
		{name: "decode preserved", err: domain.ErrDecode, want: domain.ErrDecode},
		{name: "cancel preserved", err: context.Canceled, want: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(&stubExtractor{format: domain.FormatText, err: tt.err})
			_, err := r.Extract(context.Background(), domain.FormatText, "a.txt", nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry(&stubExtractor{format: domain.FormatText, text: "old"})
	r.Register(&stubExtractor{format: domain.FormatText, text: "new"})

	result, err := r.Extract(context.Background(), domain.FormatText, "a.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "new", result.Text)
	assert.Len(t, r.SupportedFormats(), 1)
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t,
		[]domain.Format{domain.FormatDOCX, domain.FormatPDF, domain.FormatText},
		r.SupportedFormats())
}
