package services

import (
	"strings"
	"time"

	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// UserService keeps the local user table in sync with the upstream identity
// provider.
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// SyncUser upserts the caller's profile. First sync creates the record;
// later syncs refresh name, email and image.
func (s *UserService) SyncUser(callerID string, req *models.SyncUserRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return nil, err
	}

	existing, err := s.users.GetUser(callerID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	user := &models.User{
		ID:        callerID,
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		CreatedAt: time.Now().UnixMilli(),
	}
	if existing != nil {
		user.CreatedAt = existing.CreatedAt
	}

	if err := s.users.StoreUser(user); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return user, nil
}
