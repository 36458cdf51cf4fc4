package services

import "github.com/wisemoney/wisemoney-backend/models"

// Store interfaces consumed by the services. The repository types satisfy
// them; tests substitute in-memory fixtures.

// UserStore reads and writes user records
type UserStore interface {
	StoreUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	GetAllUsers() ([]*models.User, error)
}

// ExpenseStore reads and writes expense records
type ExpenseStore interface {
	StoreExpense(expense *models.Expense) error
	GetExpense(id string) (*models.Expense, error)
	RemoveExpense(id string) (bool, error)
	GetGroupExpenses(groupID string) ([]*models.Expense, error)
	GetPersonalExpenses() ([]*models.Expense, error)
	GetPersonalExpensesByPayer(userID string) ([]*models.Expense, error)
	GetPersonalExpensesForUser(userID string) ([]*models.Expense, error)
	GetExpensesSince(date int64) ([]*models.Expense, error)
}

// SettlementStore reads and writes settlement records
type SettlementStore interface {
	StoreSettlement(settlement *models.Settlement) error
	GetGroupSettlements(groupID string) ([]*models.Settlement, error)
	GetGroupSettlementsForUser(groupID, userID string) ([]*models.Settlement, error)
	GetPersonalSettlements() ([]*models.Settlement, error)
	GetPersonalSettlementsForUser(userID string) ([]*models.Settlement, error)
	GetPersonalSettlementsBetween(userA, userB string) ([]*models.Settlement, error)
}

// GroupStore reads and writes group records
type GroupStore interface {
	StoreGroup(group *models.Group) error
	GetGroup(id string) (*models.Group, error)
	GetGroupsForUser(userID string) ([]*models.Group, error)
}
