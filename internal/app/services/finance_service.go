package services

import (
	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/validation"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// FinanceService implements the append-only ledger. Records are appended by
// staff and aggregated on read for the admin and director dashboards; no
// update or delete exists anywhere.
type FinanceService interface {
	ListRecords() []models.FinancialRecord
	Append(req dto.AppendRecordRequest) (*models.FinancialRecord, error)
	Summary() models.FinanceSummary
}

type financeServiceImpl struct {
	reg *registry.Registry
}

// NewFinanceService creates the ledger view-model over the shared registry.
func NewFinanceService(reg *registry.Registry) FinanceService {
	return &financeServiceImpl{reg: reg}
}

func (s *financeServiceImpl) ListRecords() []models.FinancialRecord {
	return s.reg.FinancialRecords()
}

// Append validates and appends one ledger entry with a fresh id.
func (s *financeServiceImpl) Append(req dto.AppendRecordRequest) (*models.FinancialRecord, error) {
	b := validation.NewBuilder("financialRecord")
	b.RequireOneOf("type", string(req.Type), string(models.RecordIncome), string(models.RecordExpense))
	category := b.Require("category", req.Category)
	description := b.Require("description", req.Description)
	date := b.Require("date", req.Date)
	b.RequirePositive("amount", req.Amount)
	if err := b.Finalize(); err != nil {
		return nil, err
	}

	record := models.FinancialRecord{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Category:    category,
		Description: description,
		Amount:      req.Amount,
		Date:        date,
	}

	s.reg.UpdateFinancialRecords(func(records []models.FinancialRecord) []models.FinancialRecord {
		return append(records, record)
	})
	return &record, nil
}

// Summary computes the aggregate by filter+sum over the whole ledger.
// Balance is income minus expense with plain float addition.
func (s *financeServiceImpl) Summary() models.FinanceSummary {
	var summary models.FinanceSummary
	for _, r := range s.reg.FinancialRecords() {
		switch r.Type {
		case models.RecordIncome:
			summary.Income += r.Amount
		case models.RecordExpense:
			summary.Expense += r.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary
}
