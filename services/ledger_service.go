package services

import (
	"math"
	"sort"

	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// LedgerService holds the balance computations. Every method is a pure fold
// over the record slices it is handed: no I/O, no stored running totals, and
// re-running a method on the same snapshot yields the same result. Callers
// are responsible for fetching the relevant records and for write-time
// validation of the invariants (positive amounts, split sums within
// tolerance); records violating them are folded as-is rather than rejected
// here.
type LedgerService struct {
	// AllowOverpaymentCarry flips a settlement overpayment into a reverse
	// debt instead of discarding the excess. Off by default, matching the
	// recorded clamp-at-zero ledger behavior.
	AllowOverpaymentCarry bool
}

// NewLedgerService creates a new ledger service
func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// PairwiseBalance computes the net position between userID and otherID over
// their shared personal history. Only expenses where exactly one of the two
// is the payer and the other holds an unpaid split contribute; settlements
// between the pair then reduce the payer's outstanding bucket, floored at
// zero unless overpayment carry is enabled.
func (s *LedgerService) PairwiseBalance(userID, otherID string, expenses []*models.Expense, settlements []*models.Settlement) models.PairwiseBalance {
	var owed float64  // they owe me
	var owing float64 // I owe them

	for _, exp := range expenses {
		if exp.GroupID != "" {
			continue
		}
		if !exp.Involves(userID) || !exp.Involves(otherID) {
			continue
		}

		switch exp.PaidByUserID {
		case userID:
			if split := exp.SplitFor(otherID); split != nil && !split.Paid {
				owed += split.Amount
			}
		case otherID:
			if split := exp.SplitFor(userID); split != nil && !split.Paid {
				owing += split.Amount
			}
		}
	}

	for _, st := range settlements {
		if st.GroupID != "" {
			continue
		}
		switch {
		case st.PaidByUserID == userID && st.ReceivedByUserID == otherID:
			owing, owed = s.reduce(owing, owed, st.Amount)
		case st.PaidByUserID == otherID && st.ReceivedByUserID == userID:
			owed, owing = s.reduce(owed, owing, st.Amount)
		}
	}

	return models.PairwiseBalance{
		YouAreOwed: utils.Round(owed),
		YouOwe:     utils.Round(owing),
		Net:        utils.Round(owed - owing),
	}
}

// reduce subtracts a settlement from an outstanding bucket. The bucket never
// goes negative; with overpayment carry enabled the excess moves to the
// opposite bucket as a reverse debt.
func (s *LedgerService) reduce(bucket, opposite, amount float64) (float64, float64) {
	bucket -= amount
	if bucket < 0 {
		if s.AllowOverpaymentCarry {
			opposite += -bucket
		}
		bucket = 0
	}
	return bucket, opposite
}

// pairTally accumulates both directions of one counterparty relationship.
type pairTally struct {
	owed  float64 // counterparty owes the user
	owing float64 // user owes the counterparty
}

// PersonalBalances folds a user's entire personal history into aggregate
// you-owe / you-are-owed totals plus a per-counterparty breakdown bucketed
// by the sign of each net. Zero-net counterparties are dropped; both lists
// are sorted descending by amount with counterparty id as tie-breaker.
func (s *LedgerService) PersonalBalances(userID string, expenses []*models.Expense, settlements []*models.Settlement) models.PersonalBalance {
	var youOwe, youAreOwed float64
	tallies := make(map[string]*pairTally)

	tally := func(id string) *pairTally {
		t, ok := tallies[id]
		if !ok {
			t = &pairTally{}
			tallies[id] = t
		}
		return t
	}

	for _, exp := range expenses {
		if exp.GroupID != "" || !exp.Involves(userID) {
			continue
		}

		if exp.PaidByUserID == userID {
			for _, split := range exp.Splits {
				if split.UserID == userID || split.Paid {
					continue
				}
				youAreOwed += split.Amount
				tally(split.UserID).owed += split.Amount
			}
		} else if split := exp.SplitFor(userID); split != nil && !split.Paid {
			youOwe += split.Amount
			tally(exp.PaidByUserID).owing += split.Amount
		}
	}

	for _, st := range settlements {
		if st.GroupID != "" {
			continue
		}
		if st.PaidByUserID == userID {
			youOwe -= st.Amount
			tally(st.ReceivedByUserID).owing -= st.Amount
		} else if st.ReceivedByUserID == userID {
			youAreOwed -= st.Amount
			tally(st.PaidByUserID).owed -= st.Amount
		}
	}

	details := models.OweDetails{
		YouOwe:       []models.CounterpartyBalance{},
		YouAreOwedBy: []models.CounterpartyBalance{},
	}
	for id, t := range tallies {
		net := utils.Round(t.owed - t.owing)
		if net == 0 {
			continue
		}
		entry := models.CounterpartyBalance{UserID: id, Amount: math.Abs(net)}
		if net > 0 {
			details.YouAreOwedBy = append(details.YouAreOwedBy, entry)
		} else {
			details.YouOwe = append(details.YouOwe, entry)
		}
	}
	sortCounterparties(details.YouOwe)
	sortCounterparties(details.YouAreOwedBy)

	return models.PersonalBalance{
		YouOwe:       utils.Round(youOwe),
		YouAreOwed:   utils.Round(youAreOwed),
		TotalBalance: utils.Round(youAreOwed - youOwe),
		OweDetails:   details,
	}
}

func sortCounterparties(list []models.CounterpartyBalance) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Amount != list[j].Amount {
			return list[i].Amount > list[j].Amount
		}
		return list[i].UserID < list[j].UserID
	})
}

// GroupLedger is the N×N directed debt matrix for a fixed member ordering.
// Cells[i][j] is the amount member i owes member j. Totals carries each
// member's net position (positive = net creditor). Before simplification a
// cell may be negative: settlements are applied as raw subtraction and the
// overshoot resolves during pairwise netting.
type GroupLedger struct {
	MemberIDs []string
	Cells     [][]float64
	Totals    map[string]float64

	index map[string]int
}

// Cell returns the amount debtor owes creditor, or 0 for unknown members.
func (l *GroupLedger) Cell(debtor, creditor string) float64 {
	di, ok := l.index[debtor]
	if !ok {
		return 0
	}
	ci, ok := l.index[creditor]
	if !ok {
		return 0
	}
	return l.Cells[di][ci]
}

// BuildGroupLedger folds a group's expenses and settlements into the debt
// matrix. Records referencing users outside memberIDs are skipped rather
// than rejected; membership consistency is a write-time concern.
func (s *LedgerService) BuildGroupLedger(memberIDs []string, expenses []*models.Expense, settlements []*models.Settlement) *GroupLedger {
	n := len(memberIDs)
	ledger := &GroupLedger{
		MemberIDs: memberIDs,
		Cells:     make([][]float64, n),
		Totals:    make(map[string]float64, n),
		index:     make(map[string]int, n),
	}
	for i, id := range memberIDs {
		ledger.Cells[i] = make([]float64, n)
		ledger.Totals[id] = 0
		ledger.index[id] = i
	}

	for _, exp := range expenses {
		payer := exp.PaidByUserID
		pi, ok := ledger.index[payer]
		if !ok {
			continue
		}
		for _, split := range exp.Splits {
			if split.UserID == payer || split.Paid {
				continue
			}
			di, ok := ledger.index[split.UserID]
			if !ok {
				continue
			}
			ledger.Cells[di][pi] += split.Amount
			ledger.Totals[payer] += split.Amount
			ledger.Totals[split.UserID] -= split.Amount
		}
	}

	for _, st := range settlements {
		pi, ok := ledger.index[st.PaidByUserID]
		if !ok {
			continue
		}
		ri, ok := ledger.index[st.ReceivedByUserID]
		if !ok {
			continue
		}
		ledger.Cells[pi][ri] -= st.Amount
		ledger.Totals[st.PaidByUserID] += st.Amount
		ledger.Totals[st.ReceivedByUserID] -= st.Amount
	}

	return ledger
}

// SimplifyLedger collapses every unordered member pair to a single net
// directed debt. This is bilateral netting only: a multi-party circular debt
// (A→B→C→A) is left untouched, each pair netting independently.
func (s *LedgerService) SimplifyLedger(ledger *GroupLedger) {
	for i := range ledger.MemberIDs {
		for j := i + 1; j < len(ledger.MemberIDs); j++ {
			diff := ledger.Cells[i][j] - ledger.Cells[j][i]
			switch {
			case diff > 0:
				ledger.Cells[i][j] = diff
				ledger.Cells[j][i] = 0
			case diff < 0:
				ledger.Cells[j][i] = -diff
				ledger.Cells[i][j] = 0
			default:
				ledger.Cells[i][j] = 0
				ledger.Cells[j][i] = 0
			}
		}
	}
}

// MemberBalances shapes a simplified ledger into the per-member view: each
// member's net position plus who they owe and who owes them.
func (s *LedgerService) MemberBalances(ledger *GroupLedger) []models.MemberBalance {
	balances := make([]models.MemberBalance, len(ledger.MemberIDs))
	for i, id := range ledger.MemberIDs {
		balance := models.MemberBalance{
			UserID:       id,
			TotalBalance: utils.Round(ledger.Totals[id]),
			Owes:         []models.DebtTo{},
			OwedBy:       []models.DebtFrom{},
		}
		for j, other := range ledger.MemberIDs {
			if ledger.Cells[i][j] > 0 {
				balance.Owes = append(balance.Owes, models.DebtTo{
					To:     other,
					Amount: utils.Round(ledger.Cells[i][j]),
				})
			}
			if ledger.Cells[j][i] > 0 {
				balance.OwedBy = append(balance.OwedBy, models.DebtFrom{
					From:   other,
					Amount: utils.Round(ledger.Cells[j][i]),
				})
			}
		}
		balances[i] = balance
	}
	return balances
}

// debtEntry tracks one counterparty's running amount and the earliest
// expense date still contributing to it.
type debtEntry struct {
	amount float64
	since  int64
}

// OutstandingDebts computes what userID still owes on the personal ledger,
// per counterparty, with the date the debt started. Amounts the user is owed
// push the entry negative and never surface; only positive nets are
// reported, sorted descending by amount.
func (s *LedgerService) OutstandingDebts(userID string, expenses []*models.Expense, settlements []*models.Settlement) []models.OutstandingDebt {
	ledger := make(map[string]*debtEntry)

	entry := func(id string, date int64) *debtEntry {
		e, ok := ledger[id]
		if !ok {
			e = &debtEntry{since: date}
			ledger[id] = e
		}
		return e
	}

	for _, exp := range expenses {
		if exp.GroupID != "" {
			continue
		}
		if exp.PaidByUserID != userID {
			split := exp.SplitFor(userID)
			if split == nil || split.Paid {
				continue
			}
			e := entry(exp.PaidByUserID, exp.Date)
			e.amount += split.Amount
			if exp.Date < e.since {
				e.since = exp.Date
			}
		} else {
			for _, split := range exp.Splits {
				if split.UserID == userID || split.Paid {
					continue
				}
				// Credit only; since is ignored while the amount
				// stays non-positive.
				entry(split.UserID, exp.Date).amount -= split.Amount
			}
		}
	}

	for _, st := range settlements {
		if st.GroupID != "" {
			continue
		}
		if st.PaidByUserID == userID {
			if e, ok := ledger[st.ReceivedByUserID]; ok {
				e.amount -= st.Amount
			}
		} else if st.ReceivedByUserID == userID {
			if e, ok := ledger[st.PaidByUserID]; ok {
				e.amount += st.Amount
			}
		}
	}

	var debts []models.OutstandingDebt
	for counterID, e := range ledger {
		amount := utils.Round(e.amount)
		if amount <= 0 {
			continue
		}
		debts = append(debts, models.OutstandingDebt{
			UserID: counterID,
			Amount: amount,
			Since:  e.since,
		})
	}
	sort.Slice(debts, func(i, j int) bool {
		if debts[i].Amount != debts[j].Amount {
			return debts[i].Amount > debts[j].Amount
		}
		return debts[i].UserID < debts[j].UserID
	})
	return debts
}
