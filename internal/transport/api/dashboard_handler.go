package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/lendboard/internal/service"
)

type DashboardHandler struct {
	dashboardService DashboardServicer
}

func NewDashboardHandler(dashboardService DashboardServicer) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

type DashboardResponse struct {
	TotalUsers          int `json:"totalUsers"`
	ActiveLoans         int `json:"activeLoans"`
	PendingRequests     int `json:"pendingRequests"`
	OverdueInstallments int `json:"overdueInstallments"`

	TotalDisbursed     string `json:"totalDisbursed"`
	TotalBalance       string `json:"totalBalance"`
	FormattedDisbursed string `json:"formattedDisbursed"`
	FormattedBalance   string `json:"formattedBalance"`

	LoansByStatus       map[string]int             `json:"loansByStatus"`
	MonthlyLoans        []service.MonthlyLoanCount `json:"monthlyLoans"`
	MonthlyTransactions []service.MonthlyVolume    `json:"monthlyTransactions"`

	Stale bool `json:"stale"`
}

// Overview GET RouteGroup + DashboardRoute.
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	overview, err := h.dashboardService.Overview(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		TotalUsers:          overview.TotalUsers,
		ActiveLoans:         overview.ActiveLoans,
		PendingRequests:     overview.PendingRequests,
		OverdueInstallments: overview.OverdueInstallments,
		TotalDisbursed:      overview.TotalDisbursed.String(),
		TotalBalance:        overview.TotalBalance.String(),
		FormattedDisbursed:  overview.FormattedDisbursed,
		FormattedBalance:    overview.FormattedBalance,
		LoansByStatus:       overview.LoansByStatus,
		MonthlyLoans:        overview.MonthlyLoans,
		MonthlyTransactions: overview.MonthlyTransactions,
		Stale:               overview.Stale,
	})
}
