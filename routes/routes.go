package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/handlers"
	"github.com/wisemoney/wisemoney-backend/middleware"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	router.GET("/health", handlers.Health)

	// API v1 routes; all of them require a resolved user identity
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireUser())
	{
		// User endpoints
		v1.POST("/users/sync", handlers.SyncUser)

		// Expense endpoints
		v1.POST("/expenses/create", handlers.CreateExpense)
		v1.POST("/expenses/delete", handlers.DeleteExpense)
		v1.POST("/expenses/list", handlers.ListExpenses)

		// Settlement endpoints
		v1.POST("/settlements/create", handlers.CreateSettlement)
		v1.POST("/settlements/list", handlers.ListSettlements)

		// Group endpoints
		v1.POST("/groups/create", handlers.CreateGroup)
		v1.POST("/groups/members", handlers.GroupOrMembers)
		v1.POST("/groups/ledger", handlers.GroupLedger)
		v1.GET("/groups/:id/report", handlers.GroupReport)

		// Balance endpoints
		v1.POST("/balances/pairwise", handlers.PairwiseBalance)
		v1.POST("/balances/me", handlers.UserBalances)
		v1.POST("/balances/debts", handlers.OutstandingDebts)

		// Dashboard endpoints
		v1.POST("/dashboard/totalSpent", handlers.TotalSpent)
		v1.POST("/dashboard/monthly", handlers.MonthlySpending)
		v1.POST("/dashboard/groups", handlers.UserGroups)

		// Contact endpoints
		v1.POST("/contacts/list", handlers.ListContacts)
	}
}
