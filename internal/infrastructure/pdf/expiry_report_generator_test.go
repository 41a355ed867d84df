package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
)

func TestGenerateExpiryReport_DevuelvePDF(t *testing.T) {
	report := dto.ExpiryReportDTO{
		ReferenceDate: "2024-05-10",
		WarnDays:      7,
		Expired: []dto.ExpiryItemDTO{
			{BatchNo: "B001", DrugName: "Paracetamol", ExpiryDate: "2024-05-09", Quantity: 10},
		},
		ExpiringSoon: []dto.ExpiryItemDTO{},
		Skipped:      1,
	}

	doc, err := NewMarotoReportGenerator("Farmacia Central").GenerateExpiryReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestItemRows_ListaVacia(t *testing.T) {
	assert.Len(t, itemRows(nil), 1)
	assert.Len(t, itemRows([]dto.ExpiryItemDTO{{BatchNo: "B1"}, {BatchNo: "B2"}}), 3)
}
