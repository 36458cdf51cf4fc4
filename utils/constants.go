package utils

const (
	// Split types
	SplitTypeEqual      = "equal"
	SplitTypePercentage = "percentage"
	SplitTypeExact      = "exact"

	// Group member roles
	RoleAdmin  = "admin"
	RoleMember = "member"

	// HTTP status messages
	ErrInvalidRequest     = "Invalid request"
	ErrUserNotFound       = "User"
	ErrGroupNotFound      = "Group"
	ErrExpenseNotFound    = "Expense"
	ErrFailedToStore      = "Failed to store data"
	ErrFailedToRetrieve   = "Failed to retrieve data"
	ErrNotGroupMember     = "You are not a member of this group"
	ErrNotSettlementParty = "You must be either the payer or the receiver"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// SplitSumTolerance is the permitted absolute difference between an
	// expense amount and the sum of its splits.
	SplitSumTolerance = 0.01
)
