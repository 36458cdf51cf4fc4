// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/wisemoney/wisemoney-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		DB: GetDB(),
	}
}

// StoreUser upserts a user profile. Profiles originate upstream; a repeated
// sync refreshes the mutable fields.
func (r *UserRepository) StoreUser(user *models.User) error {
	_, err := r.DB.Exec(
		`INSERT INTO users (id, name, email, image_url, creation_time)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (id) DO UPDATE
         SET name = EXCLUDED.name, email = EXCLUDED.email, image_url = EXCLUDED.image_url`,
		user.ID, user.Name, nullable(user.Email), nullable(user.ImageURL), user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %v", err)
	}
	return nil
}

// GetUser retrieves a user by id. Returns nil, nil when the user does not
// exist.
func (r *UserRepository) GetUser(id string) (*models.User, error) {
	var user models.User
	var email, imageURL sql.NullString

	err := r.DB.QueryRow(
		"SELECT id, name, email, image_url, creation_time FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Name, &email, &imageURL, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	user.Email = email.String
	user.ImageURL = imageURL.String
	return &user, nil
}

// GetAllUsers retrieves every user
func (r *UserRepository) GetAllUsers() ([]*models.User, error) {
	rows, err := r.DB.Query("SELECT id, name, email, image_url, creation_time FROM users")
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		var email, imageURL sql.NullString
		if err := rows.Scan(&user.ID, &user.Name, &email, &imageURL, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %v", err)
		}
		user.Email = email.String
		user.ImageURL = imageURL.String
		users = append(users, &user)
	}
	return users, rows.Err()
}

// nullable maps an empty string to SQL NULL
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
