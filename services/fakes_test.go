package services

import (
	"github.com/wisemoney/wisemoney-backend/models"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) StoreUser(user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetUser(id string) (*models.User, error) {
	return s.users[id], nil
}

func (s *fakeUserStore) GetAllUsers() ([]*models.User, error) {
	var all []*models.User
	for _, u := range s.users {
		all = append(all, u)
	}
	return all, nil
}

type fakeExpenseStore struct {
	expenses []*models.Expense
}

func (s *fakeExpenseStore) StoreExpense(expense *models.Expense) error {
	s.expenses = append(s.expenses, expense)
	return nil
}

func (s *fakeExpenseStore) GetExpense(id string) (*models.Expense, error) {
	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (s *fakeExpenseStore) RemoveExpense(id string) (bool, error) {
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeExpenseStore) GetGroupExpenses(groupID string) ([]*models.Expense, error) {
	return s.filter(func(e *models.Expense) bool { return e.GroupID == groupID }), nil
}

func (s *fakeExpenseStore) GetPersonalExpenses() ([]*models.Expense, error) {
	return s.filter(func(e *models.Expense) bool { return e.GroupID == "" }), nil
}

func (s *fakeExpenseStore) GetPersonalExpensesByPayer(userID string) ([]*models.Expense, error) {
	return s.filter(func(e *models.Expense) bool {
		return e.GroupID == "" && e.PaidByUserID == userID
	}), nil
}

func (s *fakeExpenseStore) GetPersonalExpensesForUser(userID string) ([]*models.Expense, error) {
	return s.filter(func(e *models.Expense) bool {
		return e.GroupID == "" && e.Involves(userID)
	}), nil
}

func (s *fakeExpenseStore) GetExpensesSince(date int64) ([]*models.Expense, error) {
	return s.filter(func(e *models.Expense) bool { return e.Date >= date }), nil
}

func (s *fakeExpenseStore) filter(keep func(*models.Expense) bool) []*models.Expense {
	var out []*models.Expense
	for _, e := range s.expenses {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

type fakeSettlementStore struct {
	settlements []*models.Settlement
}

func (s *fakeSettlementStore) StoreSettlement(settlement *models.Settlement) error {
	s.settlements = append(s.settlements, settlement)
	return nil
}

func (s *fakeSettlementStore) GetGroupSettlements(groupID string) ([]*models.Settlement, error) {
	return s.filter(func(st *models.Settlement) bool { return st.GroupID == groupID }), nil
}

func (s *fakeSettlementStore) GetGroupSettlementsForUser(groupID, userID string) ([]*models.Settlement, error) {
	return s.filter(func(st *models.Settlement) bool {
		return st.GroupID == groupID && (st.PaidByUserID == userID || st.ReceivedByUserID == userID)
	}), nil
}

func (s *fakeSettlementStore) GetPersonalSettlements() ([]*models.Settlement, error) {
	return s.filter(func(st *models.Settlement) bool { return st.GroupID == "" }), nil
}

func (s *fakeSettlementStore) GetPersonalSettlementsForUser(userID string) ([]*models.Settlement, error) {
	return s.filter(func(st *models.Settlement) bool {
		return st.GroupID == "" && (st.PaidByUserID == userID || st.ReceivedByUserID == userID)
	}), nil
}

func (s *fakeSettlementStore) GetPersonalSettlementsBetween(userA, userB string) ([]*models.Settlement, error) {
	return s.filter(func(st *models.Settlement) bool {
		if st.GroupID != "" {
			return false
		}
		return (st.PaidByUserID == userA && st.ReceivedByUserID == userB) ||
			(st.PaidByUserID == userB && st.ReceivedByUserID == userA)
	}), nil
}

func (s *fakeSettlementStore) filter(keep func(*models.Settlement) bool) []*models.Settlement {
	var out []*models.Settlement
	for _, st := range s.settlements {
		if keep(st) {
			out = append(out, st)
		}
	}
	return out
}

type fakeGroupStore struct {
	groups map[string]*models.Group
}

func newFakeGroupStore(groups ...*models.Group) *fakeGroupStore {
	s := &fakeGroupStore{groups: make(map[string]*models.Group)}
	for _, g := range groups {
		s.groups[g.ID] = g
	}
	return s
}

func (s *fakeGroupStore) StoreGroup(group *models.Group) error {
	s.groups[group.ID] = group
	return nil
}

func (s *fakeGroupStore) GetGroup(id string) (*models.Group, error) {
	return s.groups[id], nil
}

func (s *fakeGroupStore) GetGroupsForUser(userID string) ([]*models.Group, error) {
	var out []*models.Group
	for _, g := range s.groups {
		if g.HasMember(userID) {
			out = append(out, g)
		}
	}
	return out, nil
}
