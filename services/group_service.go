package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// GroupService handles group mutations and the group ledger query.
type GroupService struct {
	ledger      *LedgerService
	groups      GroupStore
	expenses    ExpenseStore
	settlements SettlementStore
	users       UserStore
}

// NewGroupService creates a new group service
func NewGroupService(ledger *LedgerService, groups GroupStore, expenses ExpenseStore, settlements SettlementStore, users UserStore) *GroupService {
	return &GroupService{
		ledger:      ledger,
		groups:      groups,
		expenses:    expenses,
		settlements: settlements,
		users:       users,
	}
}

// CreateGroup validates and stores a group. The creator joins as admin, the
// given members (deduplicated) as members; every member id must exist.
func (s *GroupService) CreateGroup(callerID string, req *models.CreateGroupRequest) (*models.Group, error) {
	name := strings.TrimSpace(req.Name)
	if err := utils.ValidateRequired(name, "group name"); err != nil {
		return nil, err
	}

	unique := map[string]bool{callerID: true}
	ids := []string{callerID}
	for _, id := range req.Members {
		if !unique[id] {
			unique[id] = true
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		user, err := s.users.GetUser(id)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if user == nil {
			return nil, utils.NewNotFoundError(fmt.Sprintf("User %s", id))
		}
	}

	now := time.Now().UnixMilli()
	members := make([]models.GroupMember, len(ids))
	for i, id := range ids {
		role := utils.RoleMember
		if id == callerID {
			role = utils.RoleAdmin
		}
		members[i] = models.GroupMember{UserID: id, Role: role, JoinedAt: now}
	}

	group := &models.Group{
		ID:          utils.GenerateID(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   callerID,
		Members:     members,
		CreatedAt:   now,
	}

	if err := s.groups.StoreGroup(group); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return group, nil
}

// GroupLedger returns the full ledger view for a group: its records, the
// simplified per-member balances and resolved member details. The caller
// must be a member.
func (s *GroupService) GroupLedger(callerID, groupID string) (*models.GroupLedgerResponse, error) {
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
	settlements, err := s.settlements.GetGroupSettlements(groupID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	memberDetails, err := s.memberDetails(group)
	if err != nil {
		return nil, err
	}

	ledger := s.ledger.BuildGroupLedger(group.MemberIDs(), expenses, settlements)
	s.ledger.SimplifyLedger(ledger)
	balances := s.ledger.MemberBalances(ledger)

	lookup := make(map[string]models.MemberDetail, len(memberDetails))
	for _, m := range memberDetails {
		lookup[m.ID] = m
	}
	for i := range balances {
		if m, ok := lookup[balances[i].UserID]; ok {
			balances[i].Name = m.Name
			balances[i].ImageURL = m.ImageURL
		}
	}

	if expenses == nil {
		expenses = []*models.Expense{}
	}
	if settlements == nil {
		settlements = []*models.Settlement{}
	}

	return &models.GroupLedgerResponse{
		Group: models.GroupInfo{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
		},
		Members:       memberDetails,
		Expenses:      expenses,
		Settlements:   settlements,
		Balances:      balances,
		UserLookupMap: lookup,
	}, nil
}

// GroupOrMembers returns the caller's group list, and when groupID is given
// also that group with its member profiles resolved.
func (s *GroupService) GroupOrMembers(callerID, groupID string) (*models.GroupOrMembersResponse, error) {
	userGroups, err := s.groups.GetGroupsForUser(callerID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	summaries := make([]models.GroupSummary, len(userGroups))
	for i, g := range userGroups {
		summaries[i] = models.GroupSummary{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			MemberCount: len(g.Members),
		}
	}

	response := &models.GroupOrMembersResponse{Groups: summaries}
	if groupID == "" {
		return response, nil
	}

	var selected *models.Group
	for _, g := range userGroups {
		if g.ID == groupID {
			selected = g
			break
		}
	}
	if selected == nil {
		return nil, utils.NewNotFoundError(utils.ErrGroupNotFound)
	}

	memberDetails, err := s.memberDetails(selected)
	if err != nil {
		return nil, err
	}
	response.SelectedGroup = &models.GroupWithMembers{
		ID:          selected.ID,
		Name:        selected.Name,
		Description: selected.Description,
		CreatedBy:   selected.CreatedBy,
		Members:     memberDetails,
	}
	return response, nil
}

// memberDetails resolves the profile of every group member. Members whose
// user record has vanished are skipped rather than failing the query.
func (s *GroupService) memberDetails(group *models.Group) ([]models.MemberDetail, error) {
	details := make([]models.MemberDetail, 0, len(group.Members))
	for _, member := range group.Members {
		user, err := s.users.GetUser(member.UserID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if user == nil {
			continue
		}
		details = append(details, models.MemberDetail{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			ImageURL: user.ImageURL,
			Role:     member.Role,
		})
	}
	return details, nil
}
