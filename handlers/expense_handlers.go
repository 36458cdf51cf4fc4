package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/middleware"
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// CreateExpense handles creating an expense
func CreateExpense(c *gin.Context) {
	var request models.CreateExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := handlerServices.ExpenseService.CreateExpense(middleware.CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateExpenseResponse{ExpenseID: expense.ID})
}

// DeleteExpense handles deleting an expense
func DeleteExpense(c *gin.Context) {
	var request models.DeleteExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.ExpenseService.DeleteExpense(middleware.CurrentUserID(c), request.ExpenseID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

// ListExpenses handles listing a group's or the caller's personal expenses
func ListExpenses(c *gin.Context) {
	var request models.ListExpensesRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expenses, err := handlerServices.ExpenseService.ListExpenses(middleware.CurrentUserID(c), request.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if expenses == nil {
		expenses = []*models.Expense{}
	}
	utils.HandleSuccess(c, expenses)
}
