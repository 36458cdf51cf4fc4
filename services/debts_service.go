package services

import (
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// DebtsService answers "who owes whom, how much, since when" on the personal
// ledger. It feeds the payment reminder job and the debts endpoint.
type DebtsService struct {
	ledger      *LedgerService
	expenses    ExpenseStore
	settlements SettlementStore
	users       UserStore
}

// NewDebtsService creates a new debts service
func NewDebtsService(ledger *LedgerService, expenses ExpenseStore, settlements SettlementStore, users UserStore) *DebtsService {
	return &DebtsService{
		ledger:      ledger,
		expenses:    expenses,
		settlements: settlements,
		users:       users,
	}
}

// OutstandingDebts lists what one user still owes, per counterparty.
func (s *DebtsService) OutstandingDebts(userID string) ([]models.OutstandingDebt, error) {
	expenses, err := s.expenses.GetPersonalExpensesForUser(userID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	settlements, err := s.settlements.GetPersonalSettlementsForUser(userID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	debts := s.ledger.OutstandingDebts(userID, expenses, settlements)
	if err := s.resolveCounterparties(debts); err != nil {
		return nil, err
	}
	return debts, nil
}

// UsersWithOutstandingDebts computes the outstanding debts of every user,
// skipping users who owe nothing. The whole personal history is loaded once
// and folded per user.
func (s *DebtsService) UsersWithOutstandingDebts() ([]models.UserDebts, error) {
	users, err := s.users.GetAllUsers()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	expenses, err := s.expenses.GetPersonalExpenses()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	settlements, err := s.settlements.GetPersonalSettlements()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	var result []models.UserDebts
	for _, user := range users {
		debts := s.ledger.OutstandingDebts(user.ID, expenses, settlements)
		if len(debts) == 0 {
			continue
		}
		if err := s.resolveCounterparties(debts); err != nil {
			return nil, err
		}
		result = append(result, models.UserDebts{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Debts:  debts,
		})
	}
	return result, nil
}

func (s *DebtsService) resolveCounterparties(debts []models.OutstandingDebt) error {
	for i := range debts {
		user, err := s.users.GetUser(debts[i].UserID)
		if err != nil {
			return utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if user == nil {
			debts[i].Name = "Unknown"
			continue
		}
		debts[i].Name = user.Name
		debts[i].Email = user.Email
	}
	return nil
}
