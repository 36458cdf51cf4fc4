package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/middleware"
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// PairwiseBalance handles the one-on-one balance query
func PairwiseBalance(c *gin.Context) {
	var request models.PairwiseBalanceRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.BalanceService.PairwiseBalance(middleware.CurrentUserID(c), request.OtherUserID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// UserBalances handles the caller's aggregate balance query
func UserBalances(c *gin.Context) {
	result, err := handlerServices.BalanceService.UserBalances(middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// OutstandingDebts handles the caller's outstanding debts query
func OutstandingDebts(c *gin.Context) {
	debts, err := handlerServices.DebtsService.OutstandingDebts(middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if debts == nil {
		debts = []models.OutstandingDebt{}
	}
	utils.HandleSuccess(c, debts)
}
