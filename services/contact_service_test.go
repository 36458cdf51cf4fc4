package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wisemoney/wisemoney-backend/models"
)

func TestAllContacts(t *testing.T) {
	expenses := &fakeExpenseStore{expenses: []*models.Expense{
		{ID: "e1", PaidByUserID: "bob", Splits: []models.Split{
			{UserID: "alice", Amount: 5},
		}},
		{ID: "e2", PaidByUserID: "alice", Splits: []models.Split{
			{UserID: "carol", Amount: 5},
			{UserID: "vanished", Amount: 5},
		}},
		// Group expenses do not feed the contact list.
		{ID: "e3", GroupID: "g1", PaidByUserID: "dave", Splits: []models.Split{
			{UserID: "alice", Amount: 5},
		}},
	}}
	groups := newFakeGroupStore(testGroup())
	svc := NewContactService(expenses, groups, testUsers())

	resp, err := svc.AllContacts("alice")
	assert.NoError(t, err)

	// Sorted by name; users without a record are dropped.
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, "Bob", resp.Users[0].Name)
	assert.Equal(t, "Carol", resp.Users[1].Name)

	assert.Len(t, resp.Groups, 1)
	assert.Equal(t, "g1", resp.Groups[0].ID)
	assert.Equal(t, 2, resp.Groups[0].MemberCount)
}
