package services

import (
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// BalanceService fetches the relevant personal records and delegates to the
// ledger calculators.
type BalanceService struct {
	ledger      *LedgerService
	expenses    ExpenseStore
	settlements SettlementStore
	users       UserStore
}

// NewBalanceService creates a new balance service
func NewBalanceService(ledger *LedgerService, expenses ExpenseStore, settlements SettlementStore, users UserStore) *BalanceService {
	return &BalanceService{
		ledger:      ledger,
		expenses:    expenses,
		settlements: settlements,
		users:       users,
	}
}

// PairwiseBalance computes the caller's net position against one
// counterparty from their shared personal history.
func (s *BalanceService) PairwiseBalance(callerID, otherID string) (*models.PairwiseBalanceResponse, error) {
	other, err := s.users.GetUser(otherID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if other == nil {
		return nil, utils.NewNotFoundError(utils.ErrUserNotFound)
	}

	mine, err := s.expenses.GetPersonalExpensesByPayer(callerID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	theirs, err := s.expenses.GetPersonalExpensesByPayer(otherID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	settlements, err := s.settlements.GetPersonalSettlementsBetween(callerID, otherID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	balance := s.ledger.PairwiseBalance(callerID, otherID, append(mine, theirs...), settlements)

	return &models.PairwiseBalanceResponse{
		Counterpart: models.MemberDetail{
			ID:       other.ID,
			Name:     other.Name,
			Email:    other.Email,
			ImageURL: other.ImageURL,
		},
		PairwiseBalance: balance,
	}, nil
}

// UserBalances aggregates the caller's entire personal history into totals
// and a per-counterparty breakdown with profiles resolved.
func (s *BalanceService) UserBalances(callerID string) (*models.PersonalBalance, error) {
	expenses, err := s.expenses.GetPersonalExpensesForUser(callerID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	settlements, err := s.settlements.GetPersonalSettlementsForUser(callerID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	balance := s.ledger.PersonalBalances(callerID, expenses, settlements)
	if err := s.resolveNames(balance.OweDetails.YouOwe); err != nil {
		return nil, err
	}
	if err := s.resolveNames(balance.OweDetails.YouAreOwedBy); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (s *BalanceService) resolveNames(list []models.CounterpartyBalance) error {
	for i := range list {
		user, err := s.users.GetUser(list[i].UserID)
		if err != nil {
			return utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if user == nil {
			list[i].Name = "Unknown"
			continue
		}
		list[i].Name = user.Name
		list[i].ImageURL = user.ImageURL
	}
	return nil
}
