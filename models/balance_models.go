// models/balance_models.go
package models

// PairwiseBalance is the net position between the requesting user and one
// counterparty on the personal ledger. Net = YouAreOwed - YouOwe; positive
// means the counterparty should pay the requesting user.
type PairwiseBalance struct {
	YouAreOwed float64 `json:"youAreOwed"`
	YouOwe     float64 `json:"youOwe"`
	Net        float64 `json:"netBalance"`
}

// CounterpartyBalance is one entry of a per-counterparty breakdown.
// Amount is always positive; which list the entry sits in carries the sign.
type CounterpartyBalance struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Amount   float64 `json:"amount"`
}

// OweDetails splits a user's counterparties into the two directions.
type OweDetails struct {
	YouOwe       []CounterpartyBalance `json:"youOwe"`
	YouAreOwedBy []CounterpartyBalance `json:"youAreOwedBy"`
}

// PersonalBalance aggregates a user's entire personal (non-group) history.
type PersonalBalance struct {
	YouOwe       float64    `json:"youOwe"`
	YouAreOwed   float64    `json:"youAreOwed"`
	TotalBalance float64    `json:"totalBalance"`
	OweDetails   OweDetails `json:"oweDetails"`
}

// DebtTo is a directed debt owed by the enclosing member to another member.
type DebtTo struct {
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// DebtFrom is a directed debt another member owes to the enclosing member.
type DebtFrom struct {
	From   string  `json:"from"`
	Amount float64 `json:"amount"`
}

// MemberBalance is the presentation view of one group member after debt
// simplification.
type MemberBalance struct {
	UserID       string     `json:"userId"`
	Name         string     `json:"name,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	TotalBalance float64    `json:"totalBalance"`
	Owes         []DebtTo   `json:"owes"`
	OwedBy       []DebtFrom `json:"owedBy"`
}

// OutstandingDebt is one positive net debt on the personal ledger, with the
// date of the earliest expense still contributing to it.
type OutstandingDebt struct {
	UserID string  `json:"userId"`
	Name   string  `json:"name,omitempty"`
	Email  string  `json:"email,omitempty"`
	Amount float64 `json:"amount"`
	Since  int64   `json:"since"`
}

// UserDebts pairs a debtor with everything they currently owe.
type UserDebts struct {
	UserID string            `json:"userId"`
	Name   string            `json:"name"`
	Email  string            `json:"email,omitempty"`
	Debts  []OutstandingDebt `json:"debts"`
}

// MonthlyTotal is one month bucket of a user's spending.
type MonthlyTotal struct {
	Month int64   `json:"month"` // Unix millis of the first day of the month
	Total float64 `json:"total"`
}

// GroupSummary is a group annotated with the requesting user's net balance
// in it.
type GroupSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	MemberCount int     `json:"memberCount"`
	Balance     float64 `json:"balance"`
}
