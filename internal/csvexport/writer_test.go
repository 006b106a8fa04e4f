package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edms/internal/csvexport"
	"edms/internal/domain"
)

func TestWriteRegister_PrefixesBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvexport.WriteRegister(&buf, nil))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}

func TestWriteRegister_HeaderAndRows(t *testing.T) {
	id := uuid.New()
	docs := []domain.DocumentView{
		{
			Document: domain.Document{
				ID:            id,
				EmployeeID:    "100234",
				CategoryCode:  "OFD",
				CategoryLabel: "Offer Document",
				Status:        domain.DocumentActive,
				FileSize:      2048,
				UploadedAt:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
			},
			EmployeeName: "A. Kumar",
			Department:   "Operations",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvexport.WriteRegister(&buf, docs))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Document ID", records[0][0])
	assert.Equal(t, "Uploaded At", records[0][8])

	row := records[1]
	assert.Equal(t, id.String(), row[0])
	assert.Equal(t, "100234", row[1])
	assert.Equal(t, "A. Kumar", row[2])
	assert.Equal(t, "Offer Document", row[5])
	assert.Equal(t, "Active", row[6])
	assert.Equal(t, "2048", row[7])
	assert.Equal(t, "2025-03-14 09:30:00", row[8])
}

func TestWriteRegister_EscapesCommas(t *testing.T) {
	docs := []domain.DocumentView{
		{
			Document: domain.Document{
				ID:            uuid.New(),
				EmployeeID:    "100234",
				CategoryCode:  "OTH",
				CategoryLabel: "Transfer, Relocation",
				Status:        domain.DocumentInactive,
				UploadedAt:    time.Now(),
			},
			EmployeeName: "Kumar, A.",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvexport.WriteRegister(&buf, docs))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Transfer, Relocation", records[1][5])
	assert.Equal(t, "Kumar, A.", records[1][2])
}
