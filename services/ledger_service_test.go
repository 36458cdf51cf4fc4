package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wisemoney/wisemoney-backend/models"
)

func expense(id, paidBy string, amount float64, splits ...models.Split) *models.Expense {
	return &models.Expense{
		ID:           id,
		Description:  id,
		Amount:       amount,
		Date:         1000,
		PaidByUserID: paidBy,
		SplitType:    "equal",
		Splits:       splits,
		CreatedBy:    paidBy,
	}
}

func groupExpense(id, groupID, paidBy string, amount float64, splits ...models.Split) *models.Expense {
	e := expense(id, paidBy, amount, splits...)
	e.GroupID = groupID
	return e
}

func settlement(id, paidBy, receivedBy string, amount float64) *models.Settlement {
	return &models.Settlement{
		ID:               id,
		Amount:           amount,
		Date:             2000,
		PaidByUserID:     paidBy,
		ReceivedByUserID: receivedBy,
		CreatedBy:        paidBy,
	}
}

func split(userID string, amount float64) models.Split {
	return models.Split{UserID: userID, Amount: amount}
}

func paidSplit(userID string, amount float64) models.Split {
	return models.Split{UserID: userID, Amount: amount, Paid: true}
}

func TestPairwiseBalanceBasic(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		expense("e1", "alice", 50, paidSplit("alice", 25), split("bob", 25)),
		expense("e2", "bob", 30, paidSplit("bob", 20), split("alice", 10)),
	}

	b := svc.PairwiseBalance("alice", "bob", expenses, nil)
	assert.Equal(t, 25.0, b.YouAreOwed)
	assert.Equal(t, 10.0, b.YouOwe)
	assert.Equal(t, 15.0, b.Net)

	// Symmetric from bob's side.
	rb := svc.PairwiseBalance("bob", "alice", expenses, nil)
	assert.Equal(t, 10.0, rb.YouAreOwed)
	assert.Equal(t, 25.0, rb.YouOwe)
	assert.Equal(t, -15.0, rb.Net)
}

func TestPairwiseBalancePayerAbsentFromSplits(t *testing.T) {
	svc := NewLedgerService()

	// Payer not listed in the splits: the full amount is owed to them.
	expenses := []*models.Expense{
		expense("e1", "alice", 25, split("bob", 25)),
	}

	b := svc.PairwiseBalance("alice", "bob", expenses, nil)
	assert.Equal(t, 25.0, b.YouAreOwed)
	assert.Equal(t, 0.0, b.YouOwe)
	assert.Equal(t, 25.0, b.Net)
}

func TestPairwiseBalanceSettlementResolvesToZero(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		expense("e1", "alice", 50, paidSplit("alice", 25), split("bob", 25)),
	}
	settlements := []*models.Settlement{
		settlement("s1", "bob", "alice", 25),
	}

	b := svc.PairwiseBalance("alice", "bob", expenses, settlements)
	assert.Equal(t, 0.0, b.YouAreOwed)
	assert.Equal(t, 0.0, b.YouOwe)
	assert.Equal(t, 0.0, b.Net)
}

func TestPairwiseBalanceOverpaymentClampsAtZero(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		expense("e1", "alice", 40, paidSplit("alice", 20), split("bob", 20)),
	}
	settlements := []*models.Settlement{
		settlement("s1", "bob", "alice", 50),
	}

	b := svc.PairwiseBalance("alice", "bob", expenses, settlements)
	assert.Equal(t, 0.0, b.YouAreOwed)
	assert.Equal(t, 0.0, b.YouOwe)
	assert.Equal(t, 0.0, b.Net)
}

func TestPairwiseBalanceOverpaymentCarry(t *testing.T) {
	svc := &LedgerService{AllowOverpaymentCarry: true}

	expenses := []*models.Expense{
		expense("e1", "alice", 40, paidSplit("alice", 20), split("bob", 20)),
	}
	settlements := []*models.Settlement{
		settlement("s1", "bob", "alice", 50),
	}

	// Bob overpaid by 30; with carry enabled alice now owes bob the excess.
	b := svc.PairwiseBalance("alice", "bob", expenses, settlements)
	assert.Equal(t, 0.0, b.YouAreOwed)
	assert.Equal(t, 30.0, b.YouOwe)
	assert.Equal(t, -30.0, b.Net)
}

func TestPairwiseBalanceIgnoresGroupAndThirdPartyRecords(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		expense("e1", "alice", 10, split("bob", 10)),
		groupExpense("e2", "g1", "alice", 100, split("bob", 100)),
		expense("e3", "alice", 99, split("carol", 99)),
		expense("e4", "carol", 99, split("bob", 99)),
	}
	settlements := []*models.Settlement{
		settlement("s1", "bob", "carol", 5),
	}

	b := svc.PairwiseBalance("alice", "bob", expenses, settlements)
	assert.Equal(t, 10.0, b.YouAreOwed)
	assert.Equal(t, 0.0, b.YouOwe)
	assert.Equal(t, 10.0, b.Net)
}

func TestPairwiseBalanceIdempotent(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		expense("e1", "alice", 50, paidSplit("alice", 25), split("bob", 25)),
		expense("e2", "bob", 18, split("alice", 9)),
	}
	settlements := []*models.Settlement{
		settlement("s1", "bob", "alice", 12),
	}

	first := svc.PairwiseBalance("alice", "bob", expenses, settlements)
	second := svc.PairwiseBalance("alice", "bob", expenses, settlements)
	assert.Equal(t, first, second)
}

func TestPersonalBalances(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		expense("e1", "alice", 60, paidSplit("alice", 20), split("bob", 20), split("carol", 20)),
		expense("e2", "bob", 30, paidSplit("bob", 15), split("alice", 15)),
		expense("e3", "dave", 8, split("alice", 8)),
	}
	settlements := []*models.Settlement{
		settlement("s1", "alice", "dave", 8),
	}

	b := svc.PersonalBalances("alice", expenses, settlements)
	assert.Equal(t, 15.0, b.YouOwe)
	assert.Equal(t, 40.0, b.YouAreOwed)
	assert.Equal(t, 25.0, b.TotalBalance)

	// Dave was fully settled and must not appear on either side; bob nets
	// to +5 in alice's favor despite the mutual debts.
	assert.Empty(t, b.OweDetails.YouOwe)
	assert.Equal(t, []models.CounterpartyBalance{
		{UserID: "carol", Amount: 20},
		{UserID: "bob", Amount: 5},
	}, b.OweDetails.YouAreOwedBy)
}

func TestPersonalBalancesSortsByAmountThenID(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		expense("e1", "alice", 10, split("zed", 10)),
		expense("e2", "alice", 30, split("bob", 30)),
		expense("e3", "alice", 10, split("ann", 10)),
	}

	b := svc.PersonalBalances("alice", expenses, nil)
	assert.Equal(t, []models.CounterpartyBalance{
		{UserID: "bob", Amount: 30},
		{UserID: "ann", Amount: 10},
		{UserID: "zed", Amount: 10},
	}, b.OweDetails.YouAreOwedBy)
}

func TestPersonalBalancesSettlementCanGoNegative(t *testing.T) {
	svc := NewLedgerService()

	// Aggregate totals apply settlements as raw subtraction, so an
	// overpayment pushes the counterparty onto the opposite list.
	expenses := []*models.Expense{
		expense("e1", "bob", 10, split("alice", 10)),
	}
	settlements := []*models.Settlement{
		settlement("s1", "alice", "bob", 25),
	}

	b := svc.PersonalBalances("alice", expenses, settlements)
	assert.Equal(t, -15.0, b.YouOwe)
	assert.Equal(t, 0.0, b.YouAreOwed)
	assert.Equal(t, 15.0, b.TotalBalance)
	assert.Equal(t, []models.CounterpartyBalance{
		{UserID: "bob", Amount: 15},
	}, b.OweDetails.YouAreOwedBy)
	assert.Empty(t, b.OweDetails.YouOwe)
}

func TestBuildGroupLedgerEqualSplit(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"u1", "u2", "u3"}

	expenses := []*models.Expense{
		groupExpense("e1", "g1", "u1", 60, split("u1", 20), split("u2", 20), split("u3", 20)),
	}

	ledger := svc.BuildGroupLedger(members, expenses, nil)
	assert.Equal(t, 20.0, ledger.Cell("u2", "u1"))
	assert.Equal(t, 20.0, ledger.Cell("u3", "u1"))
	assert.Equal(t, 0.0, ledger.Cell("u1", "u2"))
	assert.Equal(t, 40.0, ledger.Totals["u1"])
	assert.Equal(t, -20.0, ledger.Totals["u2"])
	assert.Equal(t, -20.0, ledger.Totals["u3"])
}

func TestGroupLedgerTotalsZeroSum(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"u1", "u2", "u3", "u4"}

	expenses := []*models.Expense{
		groupExpense("e1", "g1", "u1", 100, split("u2", 40), split("u3", 35), split("u4", 25)),
		groupExpense("e2", "g1", "u2", 45, paidSplit("u2", 15), split("u1", 15), split("u3", 15)),
		groupExpense("e3", "g1", "u3", 12.5, split("u4", 12.5)),
	}
	settlements := []*models.Settlement{
		{ID: "s1", Amount: 20, PaidByUserID: "u2", ReceivedByUserID: "u1", GroupID: "g1"},
		{ID: "s2", Amount: 50, PaidByUserID: "u3", ReceivedByUserID: "u1", GroupID: "g1"},
	}

	ledger := svc.BuildGroupLedger(members, expenses, settlements)
	var sum float64
	for _, total := range ledger.Totals {
		sum += total
	}
	assert.InDelta(t, 0.0, sum, 1e-9)

	// Same property holds after simplification.
	svc.SimplifyLedger(ledger)
	sum = 0
	for _, total := range ledger.Totals {
		sum += total
	}
	assert.InDelta(t, 0.0, sum, 1e-9)
}

func TestBuildGroupLedgerSkipsUnknownMembers(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"u1", "u2"}

	expenses := []*models.Expense{
		groupExpense("e1", "g1", "u1", 30, split("u2", 15), split("ghost", 15)),
		groupExpense("e2", "g1", "ghost", 99, split("u1", 99)),
	}

	ledger := svc.BuildGroupLedger(members, expenses, nil)
	assert.Equal(t, 15.0, ledger.Cell("u2", "u1"))
	assert.Equal(t, 15.0, ledger.Totals["u1"])
	assert.Equal(t, -15.0, ledger.Totals["u2"])
}

func TestSimplifyLedgerNetsEachPair(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"a", "b"}

	expenses := []*models.Expense{
		groupExpense("e1", "g1", "b", 30, split("a", 30)),
		groupExpense("e2", "g1", "a", 12, split("b", 12)),
	}

	ledger := svc.BuildGroupLedger(members, expenses, nil)
	svc.SimplifyLedger(ledger)

	assert.Equal(t, 18.0, ledger.Cell("a", "b"))
	assert.Equal(t, 0.0, ledger.Cell("b", "a"))
}

func TestSimplifyLedgerLeavesCyclesAlone(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"u1", "u2", "u3"}

	// Circular debt: u1 owes u2, u2 owes u3, u3 owes u1. Pairwise netting
	// must not collapse the cycle.
	expenses := []*models.Expense{
		groupExpense("e1", "g1", "u2", 10, split("u1", 10)),
		groupExpense("e2", "g1", "u3", 15, split("u2", 15)),
		groupExpense("e3", "g1", "u1", 5, split("u3", 5)),
	}

	ledger := svc.BuildGroupLedger(members, expenses, nil)
	svc.SimplifyLedger(ledger)

	assert.Equal(t, 10.0, ledger.Cell("u1", "u2"))
	assert.Equal(t, 15.0, ledger.Cell("u2", "u3"))
	assert.Equal(t, 5.0, ledger.Cell("u3", "u1"))
}

func TestSimplifyLedgerAtMostOneDirectionPerPair(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"u1", "u2", "u3"}

	expenses := []*models.Expense{
		groupExpense("e1", "g1", "u1", 50, split("u2", 30), split("u3", 20)),
		groupExpense("e2", "g1", "u2", 44, split("u1", 22), split("u3", 22)),
		groupExpense("e3", "g1", "u3", 10, split("u1", 10)),
	}
	settlements := []*models.Settlement{
		{ID: "s1", Amount: 8, PaidByUserID: "u2", ReceivedByUserID: "u1", GroupID: "g1"},
	}

	ledger := svc.BuildGroupLedger(members, expenses, settlements)
	svc.SimplifyLedger(ledger)

	for i := range members {
		for j := range members {
			if i == j {
				continue
			}
			a := ledger.Cells[i][j]
			b := ledger.Cells[j][i]
			assert.True(t, a == 0 || b == 0, "pair %s/%s still owes both ways", members[i], members[j])
			assert.GreaterOrEqual(t, a, 0.0)
		}
	}
}

func TestSimplifyLedgerResolvesNegativeCells(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"a", "b"}

	// b owed a 20; b then settled 30. Raw subtraction leaves the cell at
	// -10 and simplification flips it into a reverse debt.
	expenses := []*models.Expense{
		groupExpense("e1", "g1", "a", 20, split("b", 20)),
	}
	settlements := []*models.Settlement{
		{ID: "s1", Amount: 30, PaidByUserID: "b", ReceivedByUserID: "a", GroupID: "g1"},
	}

	ledger := svc.BuildGroupLedger(members, expenses, settlements)
	assert.Equal(t, -10.0, ledger.Cell("b", "a"))

	svc.SimplifyLedger(ledger)
	assert.Equal(t, 10.0, ledger.Cell("a", "b"))
	assert.Equal(t, 0.0, ledger.Cell("b", "a"))
}

func TestMemberBalances(t *testing.T) {
	svc := NewLedgerService()
	members := []string{"u1", "u2", "u3"}

	expenses := []*models.Expense{
		groupExpense("e1", "g1", "u1", 60, split("u1", 20), split("u2", 20), split("u3", 20)),
	}

	ledger := svc.BuildGroupLedger(members, expenses, nil)
	svc.SimplifyLedger(ledger)
	balances := svc.MemberBalances(ledger)

	assert.Len(t, balances, 3)
	assert.Equal(t, "u1", balances[0].UserID)
	assert.Equal(t, 40.0, balances[0].TotalBalance)
	assert.Empty(t, balances[0].Owes)
	assert.ElementsMatch(t, []models.DebtFrom{
		{From: "u2", Amount: 20},
		{From: "u3", Amount: 20},
	}, balances[0].OwedBy)

	assert.Equal(t, -20.0, balances[1].TotalBalance)
	assert.Equal(t, []models.DebtTo{{To: "u1", Amount: 20}}, balances[1].Owes)
	assert.Empty(t, balances[1].OwedBy)
}

func TestOutstandingDebts(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		{ID: "e1", Amount: 30, Date: 500, PaidByUserID: "bob",
			Splits: []models.Split{split("alice", 30)}},
		{ID: "e2", Amount: 10, Date: 100, PaidByUserID: "bob",
			Splits: []models.Split{split("alice", 10)}},
		{ID: "e3", Amount: 12, Date: 300, PaidByUserID: "carol",
			Splits: []models.Split{split("alice", 12)}},
	}
	settlements := []*models.Settlement{
		settlement("s1", "alice", "carol", 12),
	}

	debts := svc.OutstandingDebts("alice", expenses, settlements)
	assert.Equal(t, []models.OutstandingDebt{
		{UserID: "bob", Amount: 40, Since: 100},
	}, debts)
}

func TestOutstandingDebtsNetCreditorOmitted(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		{ID: "e1", Amount: 10, Date: 100, PaidByUserID: "bob",
			Splits: []models.Split{split("alice", 10)}},
		{ID: "e2", Amount: 25, Date: 200, PaidByUserID: "alice",
			Splits: []models.Split{split("bob", 25)}},
	}

	debts := svc.OutstandingDebts("alice", expenses, nil)
	assert.Empty(t, debts)
}

func TestOutstandingDebtsSortedDescending(t *testing.T) {
	svc := NewLedgerService()

	expenses := []*models.Expense{
		{ID: "e1", Amount: 5, Date: 100, PaidByUserID: "bob",
			Splits: []models.Split{split("alice", 5)}},
		{ID: "e2", Amount: 50, Date: 200, PaidByUserID: "carol",
			Splits: []models.Split{split("alice", 50)}},
		{ID: "e3", Amount: 5, Date: 300, PaidByUserID: "ann",
			Splits: []models.Split{split("alice", 5)}},
	}

	debts := svc.OutstandingDebts("alice", expenses, nil)
	assert.Len(t, debts, 3)
	assert.Equal(t, "carol", debts[0].UserID)
	assert.Equal(t, "ann", debts[1].UserID)
	assert.Equal(t, "bob", debts[2].UserID)
}
