package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wisemoney/wisemoney-backend/models"
)

func dated(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local).UnixMilli()
}

func TestTotalSpent(t *testing.T) {
	expenses := []*models.Expense{
		{ID: "e1", Date: dated(2025, time.March, 3), PaidByUserID: "alice",
			Splits: []models.Split{{UserID: "alice", Amount: 20, Paid: true}, {UserID: "bob", Amount: 20}}},
		{ID: "e2", Date: dated(2025, time.July, 10), PaidByUserID: "bob", GroupID: "g1",
			Splits: []models.Split{{UserID: "alice", Amount: 12.5}}},
		// Payer with no split of their own spends nothing themselves.
		{ID: "e3", Date: dated(2025, time.July, 11), PaidByUserID: "alice",
			Splits: []models.Split{{UserID: "bob", Amount: 30}}},
		// Next year, out of range.
		{ID: "e4", Date: dated(2026, time.January, 2), PaidByUserID: "bob",
			Splits: []models.Split{{UserID: "alice", Amount: 99}}},
	}

	assert.Equal(t, 32.5, TotalSpent("alice", 2025, expenses))
	assert.Equal(t, 50.0, TotalSpent("bob", 2025, expenses))
	assert.Equal(t, 0.0, TotalSpent("carol", 2025, expenses))
}

func TestMonthlySpending(t *testing.T) {
	expenses := []*models.Expense{
		{ID: "e1", Date: dated(2025, time.March, 3), PaidByUserID: "bob",
			Splits: []models.Split{{UserID: "alice", Amount: 10}}},
		{ID: "e2", Date: dated(2025, time.March, 20), PaidByUserID: "bob",
			Splits: []models.Split{{UserID: "alice", Amount: 5.5}}},
		{ID: "e3", Date: dated(2025, time.November, 1), PaidByUserID: "alice",
			Splits: []models.Split{{UserID: "alice", Amount: 7, Paid: true}, {UserID: "bob", Amount: 7}}},
	}

	totals := MonthlySpending("alice", 2025, expenses)
	assert.Len(t, totals, 12)
	assert.Equal(t, dated(2025, time.January, 1)-12*60*60*1000, totals[0].Month)
	assert.Equal(t, 15.5, totals[2].Total)
	assert.Equal(t, 7.0, totals[10].Total)

	var sum float64
	for _, m := range totals {
		sum += m.Total
	}
	assert.Equal(t, 22.5, sum)
}

func TestGroupBalanceFor(t *testing.T) {
	expenses := []*models.Expense{
		{ID: "e1", GroupID: "g1", PaidByUserID: "alice", Splits: []models.Split{
			{UserID: "alice", Amount: 20, Paid: true},
			{UserID: "bob", Amount: 20},
			{UserID: "carol", Amount: 20},
		}},
		{ID: "e2", GroupID: "g1", PaidByUserID: "bob", Splits: []models.Split{
			{UserID: "alice", Amount: 15},
			{UserID: "bob", Amount: 15, Paid: true},
		}},
	}
	settlements := []*models.Settlement{
		{ID: "s1", GroupID: "g1", Amount: 10, PaidByUserID: "alice", ReceivedByUserID: "bob"},
	}

	// alice: +40 from e1, -15 from e2, +10 settled out.
	assert.Equal(t, 35.0, GroupBalanceFor("alice", expenses, settlements))
	// bob: -20 from e1, +15 from e2, -10 received.
	assert.Equal(t, -15.0, GroupBalanceFor("bob", expenses, settlements))
	assert.Equal(t, -20.0, GroupBalanceFor("carol", expenses, settlements))
}

func TestUserGroups(t *testing.T) {
	groups := newFakeGroupStore(
		&models.Group{ID: "g1", Name: "Flat", Members: []models.GroupMember{
			{UserID: "alice"}, {UserID: "bob"},
		}},
		&models.Group{ID: "g2", Name: "Trip", Members: []models.GroupMember{
			{UserID: "bob"}, {UserID: "carol"},
		}},
	)
	expenses := &fakeExpenseStore{expenses: []*models.Expense{
		{ID: "e1", GroupID: "g1", PaidByUserID: "alice",
			Splits: []models.Split{{UserID: "bob", Amount: 18}}},
	}}
	svc := NewDashboardService(NewLedgerService(), expenses, &fakeSettlementStore{}, groups)

	summaries, err := svc.UserGroups("alice")
	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "g1", summaries[0].ID)
	assert.Equal(t, 2, summaries[0].MemberCount)
	assert.Equal(t, 18.0, summaries[0].Balance)
}
