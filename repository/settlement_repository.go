// repository/settlement_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/wisemoney/wisemoney-backend/models"
)

// SettlementRepository handles database operations for settlements
type SettlementRepository struct {
	DB *sql.DB
}

// NewSettlementRepository creates a new SettlementRepository
func NewSettlementRepository() *SettlementRepository {
	return &SettlementRepository{
		DB: GetDB(),
	}
}

const settlementColumns = "id, amount, note, date, paid_by, received_by, group_id, created_by"

// StoreSettlement saves a settlement and its related-expense links
func (r *SettlementRepository) StoreSettlement(settlement *models.Settlement) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO settlements
         (id, amount, note, date, paid_by, received_by, group_id, created_by)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		settlement.ID, settlement.Amount, nullable(settlement.Note), settlement.Date,
		settlement.PaidByUserID, settlement.ReceivedByUserID, nullable(settlement.GroupID),
		settlement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %v", err)
	}

	for _, expenseID := range settlement.RelatedExpenseIDs {
		_, err = tx.Exec(
			"INSERT INTO settlement_expenses (settlement_id, expense_id) VALUES ($1, $2)",
			settlement.ID, expenseID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement expense link: %v", err)
		}
	}

	return tx.Commit()
}

// GetGroupSettlements retrieves all settlements for a group
func (r *SettlementRepository) GetGroupSettlements(groupID string) ([]*models.Settlement, error) {
	return r.querySettlements(
		"SELECT "+settlementColumns+" FROM settlements WHERE group_id = $1 ORDER BY date ASC",
		groupID,
	)
}

// GetGroupSettlementsForUser retrieves a group's settlements where the user
// is payer or receiver
func (r *SettlementRepository) GetGroupSettlementsForUser(groupID, userID string) ([]*models.Settlement, error) {
	return r.querySettlements(
		`SELECT `+settlementColumns+` FROM settlements
         WHERE group_id = $1 AND (paid_by = $2 OR received_by = $2)
         ORDER BY date ASC`,
		groupID, userID,
	)
}

// GetPersonalSettlements retrieves every personal (groupless) settlement
func (r *SettlementRepository) GetPersonalSettlements() ([]*models.Settlement, error) {
	return r.querySettlements(
		"SELECT " + settlementColumns + " FROM settlements WHERE group_id IS NULL ORDER BY date ASC",
	)
}

// GetPersonalSettlementsForUser retrieves the personal settlements where the
// user is payer or receiver
func (r *SettlementRepository) GetPersonalSettlementsForUser(userID string) ([]*models.Settlement, error) {
	return r.querySettlements(
		`SELECT `+settlementColumns+` FROM settlements
         WHERE group_id IS NULL AND (paid_by = $1 OR received_by = $1)
         ORDER BY date ASC`,
		userID,
	)
}

// GetPersonalSettlementsBetween retrieves the personal settlements between
// two users, in either direction
func (r *SettlementRepository) GetPersonalSettlementsBetween(userA, userB string) ([]*models.Settlement, error) {
	return r.querySettlements(
		`SELECT `+settlementColumns+` FROM settlements
         WHERE group_id IS NULL
           AND ((paid_by = $1 AND received_by = $2) OR (paid_by = $2 AND received_by = $1))
         ORDER BY date ASC`,
		userA, userB,
	)
}

func (r *SettlementRepository) querySettlements(query string, args ...interface{}) ([]*models.Settlement, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlements: %v", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		var settlement models.Settlement
		var note, groupID sql.NullString

		err := rows.Scan(
			&settlement.ID, &settlement.Amount, &note, &settlement.Date,
			&settlement.PaidByUserID, &settlement.ReceivedByUserID, &groupID,
			&settlement.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %v", err)
		}

		settlement.Note = note.String
		settlement.GroupID = groupID.String
		settlements = append(settlements, &settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settlements: %v", err)
	}

	for _, settlement := range settlements {
		if err := r.loadRelatedExpenses(settlement); err != nil {
			return nil, err
		}
	}
	return settlements, nil
}

func (r *SettlementRepository) loadRelatedExpenses(settlement *models.Settlement) error {
	rows, err := r.DB.Query(
		"SELECT expense_id FROM settlement_expenses WHERE settlement_id = $1",
		settlement.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get settlement expense links: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID string
		if err := rows.Scan(&expenseID); err != nil {
			return fmt.Errorf("failed to scan settlement expense link: %v", err)
		}
		settlement.RelatedExpenseIDs = append(settlement.RelatedExpenseIDs, expenseID)
	}
	return rows.Err()
}
