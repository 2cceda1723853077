package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

func TestRecordsCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "", "records", "list")

	require.NoError(t, err)
	assert.Contains(t, out, domain.NoReportsMessage)
}

func TestRecordsCmd_ListAndGet(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand(t, "", "process", writeFile(t, "visit.txt", visitNote))
	require.NoError(t, err)

	out, err := executeCommand(t, "", "records")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "visit.txt")

	records, err := analyzerService.Records(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)

	out, err = executeCommand(t, "", "records", "get", records[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Diagnoses:")
	assert.Contains(t, out, "  - Hypertension")
	assert.Contains(t, out, "(none)")
	assert.NotContains(t, out, "Medication: Lisinopril")

	out, err = executeCommand(t, "", "records", "get", "--content", records[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Medication: Lisinopril 10mg")
}

func TestRecordsCmd_GetUnknown(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand(t, "", "records", "get", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
