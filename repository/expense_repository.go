// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/wisemoney/wisemoney-backend/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		DB: GetDB(),
	}
}

const expenseColumns = "id, description, amount, category, date, paid_by, split_type, group_id, created_by"

// StoreExpense saves an expense and its splits to the database
func (r *ExpenseRepository) StoreExpense(expense *models.Expense) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO expenses
         (id, description, amount, category, date, paid_by, split_type, group_id, created_by)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		expense.ID, expense.Description, expense.Amount, nullable(expense.Category),
		expense.Date, expense.PaidByUserID, expense.SplitType, nullable(expense.GroupID),
		expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %v", err)
	}

	for _, split := range expense.Splits {
		_, err = tx.Exec(
			"INSERT INTO expense_splits (expense_id, user_id, amount, paid) VALUES ($1, $2, $3, $4)",
			expense.ID, split.UserID, split.Amount, split.Paid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %v", err)
		}
	}

	return tx.Commit()
}

// GetExpense retrieves one expense by id. Returns nil, nil when absent.
func (r *ExpenseRepository) GetExpense(id string) (*models.Expense, error) {
	row := r.DB.QueryRow(
		"SELECT "+expenseColumns+" FROM expenses WHERE id = $1", id,
	)
	expense, err := r.scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadSplits(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// RemoveExpense removes an expense; splits cascade. Reports whether a row
// was deleted.
func (r *ExpenseRepository) RemoveExpense(id string) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %v", err)
	}
	return affected > 0, nil
}

// GetGroupExpenses retrieves all expenses for a group
func (r *ExpenseRepository) GetGroupExpenses(groupID string) ([]*models.Expense, error) {
	return r.queryExpenses(
		"SELECT "+expenseColumns+" FROM expenses WHERE group_id = $1 ORDER BY date ASC",
		groupID,
	)
}

// GetPersonalExpenses retrieves every personal (groupless) expense
func (r *ExpenseRepository) GetPersonalExpenses() ([]*models.Expense, error) {
	return r.queryExpenses(
		"SELECT " + expenseColumns + " FROM expenses WHERE group_id IS NULL ORDER BY date ASC",
	)
}

// GetPersonalExpensesByPayer retrieves the personal expenses paid by one user
func (r *ExpenseRepository) GetPersonalExpensesByPayer(userID string) ([]*models.Expense, error) {
	return r.queryExpenses(
		"SELECT "+expenseColumns+" FROM expenses WHERE group_id IS NULL AND paid_by = $1 ORDER BY date ASC",
		userID,
	)
}

// GetPersonalExpensesForUser retrieves the personal expenses where the user
// is payer or appears in the splits
func (r *ExpenseRepository) GetPersonalExpensesForUser(userID string) ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT `+expenseColumns+` FROM expenses
         WHERE group_id IS NULL
           AND (paid_by = $1 OR id IN (SELECT expense_id FROM expense_splits WHERE user_id = $1))
         ORDER BY date ASC`,
		userID,
	)
}

// GetExpensesSince retrieves every expense dated at or after the given
// timestamp
func (r *ExpenseRepository) GetExpensesSince(date int64) ([]*models.Expense, error) {
	return r.queryExpenses(
		"SELECT "+expenseColumns+" FROM expenses WHERE date >= $1 ORDER BY date ASC",
		date,
	)
}

func (r *ExpenseRepository) queryExpenses(query string, args ...interface{}) ([]*models.Expense, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := r.scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %v", err)
	}

	for _, expense := range expenses {
		if err := r.loadSplits(expense); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ExpenseRepository) scanExpense(row rowScanner) (*models.Expense, error) {
	var expense models.Expense
	var category, groupID sql.NullString

	err := row.Scan(
		&expense.ID, &expense.Description, &expense.Amount, &category, &expense.Date,
		&expense.PaidByUserID, &expense.SplitType, &groupID, &expense.CreatedBy,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense: %v", err)
	}

	expense.Category = category.String
	expense.GroupID = groupID.String
	return &expense, nil
}

func (r *ExpenseRepository) loadSplits(expense *models.Expense) error {
	rows, err := r.DB.Query(
		"SELECT user_id, amount, paid FROM expense_splits WHERE expense_id = $1",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense splits: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var split models.Split
		if err := rows.Scan(&split.UserID, &split.Amount, &split.Paid); err != nil {
			return fmt.Errorf("failed to scan split: %v", err)
		}
		expense.Splits = append(expense.Splits, split)
	}
	return rows.Err()
}
