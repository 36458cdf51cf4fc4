package services

import (
	"fmt"

	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// ExpenseService handles expense mutations and reads. All invariant checks
// happen here at the write boundary; the ledger calculators assume records
// already satisfy them.
type ExpenseService struct {
	expenses ExpenseStore
	groups   GroupStore
	users    UserStore
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenses ExpenseStore, groups GroupStore, users UserStore) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		groups:   groups,
		users:    users,
	}
}

// CreateExpense validates the request, computes the splits for the requested
// split type and stores the expense. The payer's own split, if present, is
// marked paid.
func (s *ExpenseService) CreateExpense(callerID string, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateSplitType(req.SplitType); err != nil {
		return nil, err
	}
	if err := utils.ValidateNotEmpty(req.Splits, "splits"); err != nil {
		return nil, err
	}

	payer, err := s.users.GetUser(req.PaidByUserID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if payer == nil {
		return nil, utils.NewNotFoundError(utils.ErrUserNotFound)
	}

	if req.GroupID != "" {
		group, err := s.groups.GetGroup(req.GroupID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if group == nil {
			return nil, utils.NewNotFoundError(utils.ErrGroupNotFound)
		}
		if !group.HasMember(callerID) {
			return nil, utils.NewForbiddenError(utils.ErrNotGroupMember)
		}
		if !group.HasMember(req.PaidByUserID) {
			return nil, utils.NewValidationError("payer must be a member of the group")
		}
		for _, split := range req.Splits {
			if !group.HasMember(split.UserID) {
				return nil, utils.NewValidationError(
					fmt.Sprintf("split participant %s is not a member of the group", split.UserID))
			}
		}
	}

	splits, err := ComputeSplits(req.Amount, req.SplitType, req.PaidByUserID, req.Splits)
	if err != nil {
		return nil, err
	}

	expense := models.NewExpense(
		utils.GenerateID(), req.Description, utils.Round(req.Amount), req.Category,
		req.PaidByUserID, req.SplitType, splits, req.GroupID, callerID,
	)

	if err := s.expenses.StoreExpense(expense); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return expense, nil
}

// ComputeSplits derives the per-participant shares for an expense. Equal
// splits divide the amount evenly, percentage splits take each participant's
// percentage of the total, exact splits use the given amounts. The computed
// shares must add up to the expense amount within the permitted tolerance.
func ComputeSplits(amount float64, splitType, paidByUserID string, inputs []models.SplitInput) ([]models.Split, error) {
	splits := make([]models.Split, 0, len(inputs))
	var sum float64

	for _, in := range inputs {
		var share float64
		switch splitType {
		case utils.SplitTypeEqual:
			share = amount / float64(len(inputs))
		case utils.SplitTypePercentage:
			share = amount * in.Percentage / 100
		case utils.SplitTypeExact:
			share = in.Amount
		}
		share = utils.Round(share)

		if share < 0 {
			return nil, utils.NewValidationError(
				fmt.Sprintf("split amount for %s cannot be negative", in.UserID))
		}

		splits = append(splits, models.Split{
			UserID: in.UserID,
			Amount: share,
			Paid:   in.UserID == paidByUserID,
		})
		sum += share
	}

	if err := utils.ValidateSplitSum(amount, sum); err != nil {
		return nil, err
	}
	return splits, nil
}

// DeleteExpense removes an expense. Only its creator or its payer may do so.
func (s *ExpenseService) DeleteExpense(callerID, expenseID string) error {
	expense, err := s.expenses.GetExpense(expenseID)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if expense == nil {
		return utils.NewNotFoundError(utils.ErrExpenseNotFound)
	}
	if expense.CreatedBy != callerID && expense.PaidByUserID != callerID {
		return utils.NewForbiddenError("you don't have permission to delete this expense")
	}

	if _, err := s.expenses.RemoveExpense(expenseID); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// ListExpenses returns a group's expenses, or the caller's personal expenses
// when groupID is empty.
func (s *ExpenseService) ListExpenses(callerID, groupID string) ([]*models.Expense, error) {
	if groupID == "" {
		expenses, err := s.expenses.GetPersonalExpensesForUser(callerID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		return expenses, nil
	}

	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if group == nil {
		return nil, utils.NewNotFoundError(utils.ErrGroupNotFound)
	}
	if !group.HasMember(callerID) {
		return nil, utils.NewForbiddenError(utils.ErrNotGroupMember)
	}

	expenses, err := s.expenses.GetGroupExpenses(groupID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return expenses, nil
}
