// models/models.go
package models

import "time"

// User represents a registered user. Identity resolution happens upstream;
// this service only ever sees stable user ids.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Split is one participant's share of an expense. Paid=true means the share
// was already settled when the expense was recorded (typically the payer's
// own share) and is excluded from all owed/owing math.
type Split struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
	Paid   bool    `json:"paid"`
}

// Expense represents a shared expense. GroupID is empty for personal
// (one-on-one) expenses. The payer need not appear in Splits; if absent the
// payer has no self-owed share.
type Expense struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category,omitempty"`
	Date         int64   `json:"date"`
	PaidByUserID string  `json:"paidByUserId"`
	SplitType    string  `json:"splitType"`
	Splits       []Split `json:"splits"`
	GroupID      string  `json:"groupId,omitempty"`
	CreatedBy    string  `json:"createdBy"`
}

// SplitFor returns the split assigned to userID, or nil if the user has no
// share of this expense.
func (e *Expense) SplitFor(userID string) *Split {
	for i := range e.Splits {
		if e.Splits[i].UserID == userID {
			return &e.Splits[i]
		}
	}
	return nil
}

// Involves reports whether userID is the payer or appears in the splits.
func (e *Expense) Involves(userID string) bool {
	return e.PaidByUserID == userID || e.SplitFor(userID) != nil
}

// Settlement represents a real-world payment that reduces an existing debt.
// GroupID is empty for settlements on the personal ledger between the two
// parties.
type Settlement struct {
	ID                string   `json:"id"`
	Amount            float64  `json:"amount"`
	Note              string   `json:"note,omitempty"`
	Date              int64    `json:"date"`
	PaidByUserID      string   `json:"paidByUserId"`
	ReceivedByUserID  string   `json:"receivedByUserId"`
	GroupID           string   `json:"groupId,omitempty"`
	RelatedExpenseIDs []string `json:"relatedExpenseIds,omitempty"`
	CreatedBy         string   `json:"createdBy"`
}

// GroupMember ties a user to a group. Role is irrelevant to balance math.
type GroupMember struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	JoinedAt int64  `json:"joinedAt"`
}

// Group represents a named set of members sharing a ledger.
type Group struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	CreatedBy   string        `json:"createdBy"`
	Members     []GroupMember `json:"members"`
	CreatedAt   int64         `json:"createdAt"`
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// MemberIDs returns the member user ids in their stored order. The group
// ledger matrix is indexed by this ordering.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.UserID
	}
	return ids
}

// NewExpense creates an Expense dated now.
func NewExpense(id, description string, amount float64, category, paidBy, splitType string, splits []Split, groupID, createdBy string) *Expense {
	return &Expense{
		ID:           id,
		Description:  description,
		Amount:       amount,
		Category:     category,
		Date:         time.Now().UnixMilli(),
		PaidByUserID: paidBy,
		SplitType:    splitType,
		Splits:       splits,
		GroupID:      groupID,
		CreatedBy:    createdBy,
	}
}

// NewSettlement creates a Settlement dated now.
func NewSettlement(id string, amount float64, note, paidBy, receivedBy, groupID string, relatedExpenseIDs []string, createdBy string) *Settlement {
	return &Settlement{
		ID:                id,
		Amount:            amount,
		Note:              note,
		Date:              time.Now().UnixMilli(),
		PaidByUserID:      paidBy,
		ReceivedByUserID:  receivedBy,
		GroupID:           groupID,
		RelatedExpenseIDs: relatedExpenseIDs,
		CreatedBy:         createdBy,
	}
}
