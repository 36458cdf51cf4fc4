package services

import (
	"sort"

	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// ContactService derives the caller's contacts: every counterparty appearing
// in their personal expense history, plus the groups they belong to.
type ContactService struct {
	expenses ExpenseStore
	groups   GroupStore
	users    UserStore
}

// NewContactService creates a new contact service
func NewContactService(expenses ExpenseStore, groups GroupStore, users UserStore) *ContactService {
	return &ContactService{
		expenses: expenses,
		groups:   groups,
		users:    users,
	}
}

// AllContacts lists the caller's one-on-one counterparties (alphabetical)
// and their groups.
func (s *ContactService) AllContacts(callerID string) (*models.ContactsResponse, error) {
	expenses, err := s.expenses.GetPersonalExpensesForUser(callerID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	contactIDs := make(map[string]bool)
	for _, exp := range expenses {
		if exp.PaidByUserID != callerID {
			contactIDs[exp.PaidByUserID] = true
		}
		for _, split := range exp.Splits {
			if split.UserID != callerID {
				contactIDs[split.UserID] = true
			}
		}
	}

	contacts := make([]models.MemberDetail, 0, len(contactIDs))
	for id := range contactIDs {
		user, err := s.users.GetUser(id)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if user == nil {
			continue
		}
		contacts = append(contacts, models.MemberDetail{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			ImageURL: user.ImageURL,
		})
	}
	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].Name != contacts[j].Name {
			return contacts[i].Name < contacts[j].Name
		}
		return contacts[i].ID < contacts[j].ID
	})

	userGroups, err := s.groups.GetGroupsForUser(callerID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	groupSummaries := make([]models.GroupSummary, len(userGroups))
	for i, g := range userGroups {
		groupSummaries[i] = models.GroupSummary{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			MemberCount: len(g.Members),
		}
	}

	return &models.ContactsResponse{
		Users:  contacts,
		Groups: groupSummaries,
	}, nil
}
