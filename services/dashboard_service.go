package services

import (
	"time"

	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// DashboardService computes the spending summaries shown on the dashboard:
// year-to-date totals, monthly buckets and the user's groups annotated with
// their balance in each.
type DashboardService struct {
	ledger      *LedgerService
	expenses    ExpenseStore
	settlements SettlementStore
	groups      GroupStore
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(ledger *LedgerService, expenses ExpenseStore, settlements SettlementStore, groups GroupStore) *DashboardService {
	return &DashboardService{
		ledger:      ledger,
		expenses:    expenses,
		settlements: settlements,
		groups:      groups,
	}
}

// TotalSpent sums the user's own share of every expense in the given year,
// group and personal alike. Year 0 means the current year.
func (s *DashboardService) TotalSpent(userID string, year int) (float64, error) {
	year = normalizeYear(year)
	expenses, err := s.expenses.GetExpensesSince(startOfYear(year))
	if err != nil {
		return 0, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return TotalSpent(userID, year, expenses), nil
}

// TotalSpent folds the user's split amounts across the year's expenses.
func TotalSpent(userID string, year int, expenses []*models.Expense) float64 {
	end := startOfYear(year + 1)
	var total float64
	for _, exp := range expenses {
		if exp.Date >= end || !exp.Involves(userID) {
			continue
		}
		if split := exp.SplitFor(userID); split != nil {
			total += split.Amount
		}
	}
	return utils.Round(total)
}

// MonthlySpending buckets the user's share of the year's expenses by month,
// in chronological order. Year 0 means the current year.
func (s *DashboardService) MonthlySpending(userID string, year int) ([]models.MonthlyTotal, error) {
	year = normalizeYear(year)
	expenses, err := s.expenses.GetExpensesSince(startOfYear(year))
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return MonthlySpending(userID, year, expenses), nil
}

// MonthlySpending folds the user's split amounts into twelve month buckets.
func MonthlySpending(userID string, year int, expenses []*models.Expense) []models.MonthlyTotal {
	totals := make([]models.MonthlyTotal, 12)
	for month := 0; month < 12; month++ {
		totals[month] = models.MonthlyTotal{
			Month: time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local).UnixMilli(),
		}
	}

	end := startOfYear(year + 1)
	for _, exp := range expenses {
		if exp.Date >= end || !exp.Involves(userID) {
			continue
		}
		split := exp.SplitFor(userID)
		if split == nil {
			continue
		}
		month := time.UnixMilli(exp.Date).In(time.Local).Month()
		totals[int(month)-1].Total += split.Amount
	}

	for i := range totals {
		totals[i].Total = utils.Round(totals[i].Total)
	}
	return totals
}

// UserGroups lists the user's groups, each with the user's net balance in
// that group (positive = the group owes the user).
func (s *DashboardService) UserGroups(userID string) ([]models.GroupSummary, error) {
	groups, err := s.groups.GetGroupsForUser(userID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	summaries := make([]models.GroupSummary, 0, len(groups))
	for _, group := range groups {
		expenses, err := s.expenses.GetGroupExpenses(group.ID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		settlements, err := s.settlements.GetGroupSettlementsForUser(group.ID, userID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}

		summaries = append(summaries, models.GroupSummary{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
			MemberCount: len(group.Members),
			Balance:     GroupBalanceFor(userID, expenses, settlements),
		})
	}
	return summaries, nil
}

// GroupBalanceFor folds a group's records into one member's net balance:
// credit for others' unpaid splits on expenses the user paid, debit for the
// user's own unpaid splits, adjusted by settlements involving the user.
func GroupBalanceFor(userID string, expenses []*models.Expense, settlements []*models.Settlement) float64 {
	var balance float64
	for _, exp := range expenses {
		if exp.PaidByUserID == userID {
			for _, split := range exp.Splits {
				if split.UserID != userID && !split.Paid {
					balance += split.Amount
				}
			}
		} else if split := exp.SplitFor(userID); split != nil && !split.Paid {
			balance -= split.Amount
		}
	}
	for _, st := range settlements {
		if st.PaidByUserID == userID {
			balance += st.Amount
		} else if st.ReceivedByUserID == userID {
			balance -= st.Amount
		}
	}
	return utils.Round(balance)
}

func normalizeYear(year int) int {
	if year == 0 {
		return time.Now().Year()
	}
	return year
}

func startOfYear(year int) int64 {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local).UnixMilli()
}
