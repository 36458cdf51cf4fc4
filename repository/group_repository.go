// repository/group_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/wisemoney/wisemoney-backend/models"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	DB *sql.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		DB: GetDB(),
	}
}

// StoreGroup saves a group and its members to the database
func (r *GroupRepository) StoreGroup(group *models.Group) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO groups (id, name, description, created_by, creation_time)
         VALUES ($1, $2, $3, $4, $5)`,
		group.ID, group.Name, nullable(group.Description), group.CreatedBy, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %v", err)
	}

	for _, member := range group.Members {
		_, err = tx.Exec(
			"INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)",
			group.ID, member.UserID, member.Role, member.JoinedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %v", err)
		}
	}

	return tx.Commit()
}

// GetGroup retrieves a group with its members. Returns nil, nil when absent.
func (r *GroupRepository) GetGroup(id string) (*models.Group, error) {
	var group models.Group
	var description sql.NullString

	err := r.DB.QueryRow(
		"SELECT id, name, description, created_by, creation_time FROM groups WHERE id = $1",
		id,
	).Scan(&group.ID, &group.Name, &description, &group.CreatedBy, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %v", err)
	}

	group.Description = description.String
	if err := r.loadMembers(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroupsForUser retrieves every group the user is a member of
func (r *GroupRepository) GetGroupsForUser(userID string) ([]*models.Group, error) {
	rows, err := r.DB.Query(
		`SELECT g.id, g.name, g.description, g.created_by, g.creation_time
         FROM groups g
         JOIN group_members gm ON gm.group_id = g.id
         WHERE gm.user_id = $1
         ORDER BY g.creation_time ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %v", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		var description sql.NullString
		if err := rows.Scan(&group.ID, &group.Name, &description, &group.CreatedBy, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %v", err)
		}
		group.Description = description.String
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read groups: %v", err)
	}

	for _, group := range groups {
		if err := r.loadMembers(group); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func (r *GroupRepository) loadMembers(group *models.Group) error {
	rows, err := r.DB.Query(
		"SELECT user_id, role, joined_at FROM group_members WHERE group_id = $1 ORDER BY joined_at ASC",
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get group members: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var member models.GroupMember
		if err := rows.Scan(&member.UserID, &member.Role, &member.JoinedAt); err != nil {
			return fmt.Errorf("failed to scan group member: %v", err)
		}
		group.Members = append(group.Members, member)
	}
	return rows.Err()
}
