package pdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// buildTestPDF writes a minimal PDF with one page per entry in pages,
// each showing its text in Helvetica. An empty entry produces a page
// with no content stream.
func buildTestPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	var objects []string
	// 1: catalog, 2: pages, 3: font; page objects follow.
	kids := ""
	next := 4
	var pageObjects []string
	for _, text := range pages {
		pageNum := next
		next++
		kids += fmt.Sprintf("%d 0 R ", pageNum)

		if text == "" {
			pageObjects = append(pageObjects,
				"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> >>")
			continue
		}

		streamNum := next
		next++
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		pageObjects = append(pageObjects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", streamNum),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	objects = append(objects, pageObjects...)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestFormat(t *testing.T) {
	assert.Equal(t, domain.FormatPDF, New().Format())
}

func TestExtract_SinglePage(t *testing.T) {
	content := buildTestPDF(t, "Diagnosis: Influenza")

	result, err := New().Extract(context.Background(), "report.pdf", content)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Diagnosis: Influenza")
	assert.Equal(t, 1, result.PageCount)
}

func TestExtract_SkipsPagesWithoutText(t *testing.T) {
	content := buildTestPDF(t, "Assessment: asthma", "", "Plan: inhaler")

	result, err := New().Extract(context.Background(), "report.pdf", content)
	require.NoError(t, err)
	assert.Equal(t, 3, result.PageCount)
	assert.Contains(t, result.Text, "Assessment: asthma")
	assert.Contains(t, result.Text, "Plan: inhaler")
	assert.Less(t,
		bytes.Index([]byte(result.Text), []byte("Assessment")),
		bytes.Index([]byte(result.Text), []byte("Plan")))
}

func TestExtract_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty", content: []byte{}},
		{name: "not a pdf", content: []byte("Diagnosis: flu")},
		{name: "truncated", content: []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Extract(context.Background(), "report.pdf", tt.content)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrExtractionFailure)
		})
	}
}

func TestExtract_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Extract(ctx, "report.pdf", buildTestPDF(t, "Plan: rest"))
	assert.ErrorIs(t, err, context.Canceled)
}
