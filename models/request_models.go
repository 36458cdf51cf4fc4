// models/request_models.go
package models

// SplitInput is one participant line of a create-expense request. Amount is
// the exact share for splitType "exact"; Percentage is used for splitType
// "percentage"; both are ignored for "equal".
type SplitInput struct {
	UserID     string  `json:"userId" binding:"required"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SyncUserRequest carries the caller's profile as known to the identity
// provider.
type SyncUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

// CreateExpenseRequest request model
type CreateExpenseRequest struct {
	Description  string       `json:"description" binding:"required"`
	Amount       float64      `json:"amount" binding:"required,gt=0"`
	Category     string       `json:"category"`
	PaidByUserID string       `json:"paidByUserId" binding:"required"`
	SplitType    string       `json:"splitType" binding:"required"`
	Splits       []SplitInput `json:"splits" binding:"required,min=1"`
	GroupID      string       `json:"groupId"`
}

// DeleteExpenseRequest request model
type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId" binding:"required"`
}

// ListExpensesRequest request model. GroupID empty means the caller's
// personal expenses.
type ListExpensesRequest struct {
	GroupID string `json:"groupId"`
}

// CreateSettlementRequest request model
type CreateSettlementRequest struct {
	Amount            float64  `json:"amount" binding:"required,gt=0"`
	Note              string   `json:"note"`
	PaidByUserID      string   `json:"paidByUserId" binding:"required"`
	ReceivedByUserID  string   `json:"receivedByUserId" binding:"required"`
	GroupID           string   `json:"groupId"`
	RelatedExpenseIDs []string `json:"relatedExpenseIds"`
}

// ListSettlementsRequest request model. With GroupID set it lists the
// group's settlements; otherwise the personal settlements between the caller
// and OtherUserID.
type ListSettlementsRequest struct {
	GroupID     string `json:"groupId"`
	OtherUserID string `json:"otherUserId"`
}

// CreateGroupRequest request model
type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// GroupRequest request model for queries addressed to one group.
type GroupRequest struct {
	GroupID string `json:"groupId" binding:"required"`
}

// GroupOrMembersRequest request model; GroupID optional.
type GroupOrMembersRequest struct {
	GroupID string `json:"groupId"`
}

// PairwiseBalanceRequest request model
type PairwiseBalanceRequest struct {
	OtherUserID string `json:"otherUserId" binding:"required"`
}

// YearRequest request model for dashboard queries; Year 0 means the current
// year.
type YearRequest struct {
	Year int `json:"year"`
}

// CreateExpenseResponse response model
type CreateExpenseResponse struct {
	ExpenseID string `json:"expenseId"`
}

// CreateSettlementResponse response model
type CreateSettlementResponse struct {
	SettlementID string `json:"settlementId"`
}

// CreateGroupResponse response model
type CreateGroupResponse struct {
	GroupID string `json:"groupId"`
}

// GroupInfo is the compact group header used in ledger responses.
type GroupInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MemberDetail is a group member with profile fields resolved.
type MemberDetail struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Role     string `json:"role"`
}

// GroupLedgerResponse is the full group ledger view: records, simplified
// balances and member details for rendering.
type GroupLedgerResponse struct {
	Group         GroupInfo               `json:"group"`
	Members       []MemberDetail          `json:"members"`
	Expenses      []*Expense              `json:"expenses"`
	Settlements   []*Settlement           `json:"settlements"`
	Balances      []MemberBalance         `json:"balances"`
	UserLookupMap map[string]MemberDetail `json:"userLookupMap"`
}

// PairwiseBalanceResponse is the pairwise balance with the counterparty's
// profile attached.
type PairwiseBalanceResponse struct {
	Counterpart MemberDetail `json:"counterpart"`
	PairwiseBalance
}

// ContactsResponse lists the caller's one-on-one counterparties and groups.
type ContactsResponse struct {
	Users  []MemberDetail `json:"users"`
	Groups []GroupSummary `json:"groups"`
}

// GroupOrMembersResponse returns either one group with resolved members or
// just the caller's group list.
type GroupOrMembersResponse struct {
	SelectedGroup *GroupWithMembers `json:"selectedGroup"`
	Groups        []GroupSummary    `json:"groups"`
}

// GroupWithMembers is a group whose member profiles have been resolved.
type GroupWithMembers struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	CreatedBy   string         `json:"createdBy"`
	Members     []MemberDetail `json:"members"`
}
