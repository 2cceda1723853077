package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, domain.FormatText, New().Format())
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "ascii",
			content: []byte("Diagnosis: Influenza\nBP 120/80"),
			want:    "Diagnosis: Influenza\nBP 120/80",
		},
		{
			name:    "multibyte",
			content: []byte("Température: 38.5°C"),
			want:    "Température: 38.5°C",
		},
		{
			name:    "byte order mark dropped",
			content: append([]byte{0xEF, 0xBB, 0xBF}, []byte("Plan: rest")...),
			want:    "Plan: rest",
		},
		{
			name:    "empty",
			content: []byte{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Extract(context.Background(), "report.txt", tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Text)
			assert.Zero(t, result.PageCount)
		})
	}
}

func TestExtract_InvalidUTF8(t *testing.T) {
	content := []byte("Diagnosis: \xff\xfe flu")

	result, err := New().Extract(context.Background(), "report.txt", content)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.Contains(t, err.Error(), "byte 11")
}

func TestInvalidUTF8Offset(t *testing.T) {
	assert.Equal(t, -1, invalidUTF8Offset([]byte("valid ✓")))
	assert.Equal(t, 0, invalidUTF8Offset([]byte{0x80}))
	assert.Equal(t, 3, invalidUTF8Offset([]byte{'a', 'b', 'c', 0xC3}))
	// A literal replacement character is valid input.
	assert.Equal(t, -1, invalidUTF8Offset([]byte("�")))
}
