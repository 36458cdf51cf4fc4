package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/middleware"
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// CreateSettlement handles recording a settlement
func CreateSettlement(c *gin.Context) {
	var request models.CreateSettlementRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	settlement, err := handlerServices.SettlementService.CreateSettlement(middleware.CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateSettlementResponse{SettlementID: settlement.ID})
}

// ListSettlements handles listing a group's settlements or the personal
// settlements between the caller and another user
func ListSettlements(c *gin.Context) {
	var request models.ListSettlementsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	settlements, err := handlerServices.SettlementService.ListSettlements(middleware.CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if settlements == nil {
		settlements = []*models.Settlement{}
	}
	utils.HandleSuccess(c, settlements)
}
