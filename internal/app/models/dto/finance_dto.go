package dto

import "github.com/erasmusedu/erasmus-portal/internal/app/models"

// AppendRecordRequest carries one new ledger entry. The ledger is
// append-only: there is no update or delete request type.
type AppendRecordRequest struct {
	Type        models.RecordType `json:"type" example:"income"`
	Category    string            `json:"category" example:"Propinas"`
	Description string            `json:"description" example:"Mensalidade Março"`
	Amount      float64           `json:"amount" example:"150000"`
	Date        string            `json:"date" example:"2024-03-01"`
}
