package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/middleware"
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// TotalSpent handles the year-to-date spending query
func TotalSpent(c *gin.Context) {
	var request models.YearRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	total, err := handlerServices.DashboardService.TotalSpent(middleware.CurrentUserID(c), request.Year)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"totalSpent": total})
}

// MonthlySpending handles the monthly spending buckets query
func MonthlySpending(c *gin.Context) {
	var request models.YearRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	totals, err := handlerServices.DashboardService.MonthlySpending(middleware.CurrentUserID(c), request.Year)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, totals)
}

// UserGroups handles listing the caller's groups with their balance in each
func UserGroups(c *gin.Context) {
	groups, err := handlerServices.DashboardService.UserGroups(middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if groups == nil {
		groups = []models.GroupSummary{}
	}
	utils.HandleSuccess(c, groups)
}
