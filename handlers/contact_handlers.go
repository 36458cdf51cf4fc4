package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/middleware"
	"github.com/wisemoney/wisemoney-backend/utils"
)

// ListContacts handles the contacts query
func ListContacts(c *gin.Context) {
	result, err := handlerServices.ContactService.AllContacts(middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}
