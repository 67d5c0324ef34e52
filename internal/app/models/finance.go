package models

// FinancialRecord is one entry of the append-only ledger. There is no update
// or delete operation anywhere in the system; aggregates are computed on read.
type FinancialRecord struct {
	ID          string     `json:"id" example:"f1"`
	Type        RecordType `json:"type" example:"income"`
	Category    string     `json:"category" example:"Propinas"`
	Description string     `json:"description" example:"Mensalidade Março - Alice S."`
	Amount      float64    `json:"amount" example:"150000"`
	Date        string     `json:"date" example:"2024-03-01"`
}

// FinanceSummary is the read-side aggregate over the ledger.
type FinanceSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
