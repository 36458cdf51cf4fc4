package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wisemoney/wisemoney-backend/repository"
	"github.com/wisemoney/wisemoney-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	UserService       *services.UserService
	ExpenseService    *services.ExpenseService
	SettlementService *services.SettlementService
	GroupService      *services.GroupService
	BalanceService    *services.BalanceService
	DebtsService      *services.DebtsService
	DashboardService  *services.DashboardService
	ContactService    *services.ContactService
	ReportService     *services.ReportService
}

// NewHandlerServices wires the services over the shared repositories
func NewHandlerServices() *HandlerServices {
	users := repository.NewUserRepository()
	expenses := repository.NewExpenseRepository()
	settlements := repository.NewSettlementRepository()
	groups := repository.NewGroupRepository()

	ledger := services.NewLedgerService()
	groupService := services.NewGroupService(ledger, groups, expenses, settlements, users)

	return &HandlerServices{
		UserService:       services.NewUserService(users),
		ExpenseService:    services.NewExpenseService(expenses, groups, users),
		SettlementService: services.NewSettlementService(settlements, groups, users),
		GroupService:      groupService,
		BalanceService:    services.NewBalanceService(ledger, expenses, settlements, users),
		DebtsService:      services.NewDebtsService(ledger, expenses, settlements, users),
		DashboardService:  services.NewDashboardService(ledger, expenses, settlements, groups),
		ContactService:    services.NewContactService(expenses, groups, users),
		ReportService:     services.NewReportService(groupService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}

// Services returns the wired handler services. Main uses it to share the
// same service instances with background jobs.
func Services() *HandlerServices {
	return handlerServices
}

// Health reports service liveness
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
