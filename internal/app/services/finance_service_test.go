package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestFinanceService(t *testing.T) (FinanceService, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	return NewFinanceService(reg), reg
}

func TestSummaryOverSeedLedger(t *testing.T) {
	svc, _ := newTestFinanceService(t)

	summary := svc.Summary()
	assert.InDelta(t, 150000, summary.Income, 0.001)
	assert.InDelta(t, 895000, summary.Expense, 0.001)
	assert.InDelta(t, -745000, summary.Balance, 0.001)
}

func TestAppendExtendsLedger(t *testing.T) {
	svc, _ := newTestFinanceService(t)
	before := len(svc.ListRecords())

	record, err := svc.Append(dto.AppendRecordRequest{
		Type:        models.RecordIncome,
		Category:    "Propinas",
		Description: "Mensalidade Abril",
		Amount:      150000,
		Date:        "2024-04-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)

	records := svc.ListRecords()
	require.Len(t, records, before+1)
	// Appends go to the tail; earlier entries keep their position.
	assert.Equal(t, record.ID, records[len(records)-1].ID)
	assert.Equal(t, "f1", records[0].ID)

	summary := svc.Summary()
	assert.InDelta(t, 300000, summary.Income, 0.001)
	assert.InDelta(t, -595000, summary.Balance, 0.001)
}

// The ledger is append-only; under parallel staff sessions every entry must
// land exactly once.
func TestConcurrentAppendsAllLand(t *testing.T) {
	svc, _ := newTestFinanceService(t)
	before := len(svc.ListRecords())

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := svc.Append(dto.AppendRecordRequest{
					Type:        models.RecordExpense,
					Category:    "Material",
					Description: "Compra de material",
					Amount:      100,
					Date:        "2024-05-01",
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	records := svc.ListRecords()
	require.Len(t, records, before+workers*perWorker)

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		assert.False(t, seen[rec.ID], "duplicate record id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestAppendRejectsInvalidRecords(t *testing.T) {
	svc, _ := newTestFinanceService(t)

	cases := []struct {
		name string
		req  dto.AppendRecordRequest
	}{
		{"unknown type", dto.AppendRecordRequest{Type: "transfer", Category: "x", Description: "y", Amount: 10, Date: "2024-01-01"}},
		{"zero amount", dto.AppendRecordRequest{Type: models.RecordIncome, Category: "x", Description: "y", Amount: 0, Date: "2024-01-01"}},
		{"negative amount", dto.AppendRecordRequest{Type: models.RecordExpense, Category: "x", Description: "y", Amount: -5, Date: "2024-01-01"}},
		{"missing category", dto.AppendRecordRequest{Type: models.RecordIncome, Description: "y", Amount: 10, Date: "2024-01-01"}},
	}

	for _, tc := range cases {
		_, err := svc.Append(tc.req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, tc.name)
	}

	// Nothing was appended.
	assert.Len(t, svc.ListRecords(), len(seed.FinancialRecords()))
}
