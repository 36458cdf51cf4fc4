package services

import (
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// SettlementService handles settlement mutations and reads. A settlement is
// an immutable fact once recorded; balances are always recomputed from the
// full history, never from a stored running total.
type SettlementService struct {
	settlements SettlementStore
	groups      GroupStore
	users       UserStore
}

// NewSettlementService creates a new settlement service
func NewSettlementService(settlements SettlementStore, groups GroupStore, users UserStore) *SettlementService {
	return &SettlementService{
		settlements: settlements,
		groups:      groups,
		users:       users,
	}
}

// CreateSettlement validates and stores a settlement. The caller must be one
// of the two parties; for a group settlement both parties must be members.
func (s *SettlementService) CreateSettlement(callerID string, req *models.CreateSettlementRequest) (*models.Settlement, error) {
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateDistinct(req.PaidByUserID, req.ReceivedByUserID,
		"payer and receiver cannot be the same user"); err != nil {
		return nil, err
	}
	if callerID != req.PaidByUserID && callerID != req.ReceivedByUserID {
		return nil, utils.NewForbiddenError(utils.ErrNotSettlementParty)
	}

	for _, userID := range []string{req.PaidByUserID, req.ReceivedByUserID} {
		user, err := s.users.GetUser(userID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if user == nil {
			return nil, utils.NewNotFoundError(utils.ErrUserNotFound)
		}
	}

	if req.GroupID != "" {
		group, err := s.groups.GetGroup(req.GroupID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		if group == nil {
			return nil, utils.NewNotFoundError(utils.ErrGroupNotFound)
		}
		if !group.HasMember(req.PaidByUserID) || !group.HasMember(req.ReceivedByUserID) {
			return nil, utils.NewValidationError("both parties must be members of the group")
		}
	}

	settlement := models.NewSettlement(
		utils.GenerateID(), utils.Round(req.Amount), req.Note,
		req.PaidByUserID, req.ReceivedByUserID, req.GroupID,
		req.RelatedExpenseIDs, callerID,
	)

	if err := s.settlements.StoreSettlement(settlement); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return settlement, nil
}

// ListSettlements returns a group's settlements, or the personal settlements
// between the caller and another user when groupID is empty.
func (s *SettlementService) ListSettlements(callerID string, req *models.ListSettlementsRequest) ([]*models.Settlement, error) {
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

		settlements, err := s.settlements.GetGroupSettlements(req.GroupID)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		return settlements, nil
	}

	if err := utils.ValidateRequired(req.OtherUserID, "otherUserId"); err != nil {
		return nil, err
	}
	settlements, err := s.settlements.GetPersonalSettlementsBetween(callerID, req.OtherUserID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return settlements, nil
}
