package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/middleware"
	"github.com/wisemoney/wisemoney-backend/models"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// CreateGroup handles creating a group
func CreateGroup(c *gin.Context) {
	var request models.CreateGroupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	group, err := handlerServices.GroupService.CreateGroup(middleware.CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateGroupResponse{GroupID: group.ID})
}

// GroupLedger handles the full group ledger query
func GroupLedger(c *gin.Context) {
	var request models.GroupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.GroupService.GroupLedger(middleware.CurrentUserID(c), request.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// GroupOrMembers handles listing the caller's groups, optionally resolving
// one group's members
func GroupOrMembers(c *gin.Context) {
	var request models.GroupOrMembersRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.GroupService.GroupOrMembers(middleware.CurrentUserID(c), request.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// GroupReport handles downloading a group's Excel report
func GroupReport(c *gin.Context) {
	groupID := c.Param("id")
	if groupID == "" {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	file, filename, err := handlerServices.ReportService.GroupReport(middleware.CurrentUserID(c), groupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
