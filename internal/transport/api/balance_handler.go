package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/service"
)

type BalanceHandler struct {
	balanceService BalanceServicer
}

func NewBalanceHandler(balanceService BalanceServicer) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

type BalanceOverviewResponse struct {
	Balances []BalanceResponse `json:"balances"`
	Summary  core.Summary      `json:"summary"`

	TotalBalance       string `json:"totalBalance"`
	TotalDeposits      string `json:"totalDeposits"`
	TotalWithdrawals   string `json:"totalWithdrawals"`
	FormattedBalance   string `json:"formattedBalance"`
	FormattedDeposits  string `json:"formattedDeposits"`
	FormattedWithdraws string `json:"formattedWithdrawals"`

	Stale bool `json:"stale"`
}

// Overview GET RouteGroup + BalanceRoute.
func (h *BalanceHandler) Overview(c *gin.Context) {
	var params ListQueryParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	overview, err := h.balanceService.Overview(ctx, params.toListQuery(""))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := BalanceOverviewResponse{
		Balances:           make([]BalanceResponse, len(overview.Balances)),
		Summary:            overview.Summary,
		TotalBalance:       overview.TotalBalance.String(),
		TotalDeposits:      overview.TotalDeposits.String(),
		TotalWithdrawals:   overview.TotalWithdrawals.String(),
		FormattedBalance:   overview.FormattedBalance,
		FormattedDeposits:  overview.FormattedDeposits,
		FormattedWithdraws: overview.FormattedWithdraws,
		Stale:              overview.Stale,
	}
	for i, view := range overview.Balances {
		response.Balances[i] = newBalanceResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

type TransactionsIndexParams struct {
	ListQueryParams
	// withdrawal принимается как псевдоним withdraw
	Type string `binding:"omitempty,oneof=all deposit withdraw withdrawal" form:"type"`
}

type TransactionListResponse struct {
	Items   []TransactionResponse `json:"items"`
	Summary core.Summary          `json:"summary"`
	Stale   bool                  `json:"stale"`
}

// Transactions GET RouteGroup + TransactionsRoute.
func (h *BalanceHandler) Transactions(c *gin.Context) {
	var params TransactionsIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.balanceService.Transactions(ctx, params.toListQuery(params.Type))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := TransactionListResponse{
		Items:   make([]TransactionResponse, len(list.Items)),
		Summary: list.Summary,
		Stale:   list.Stale,
	}
	for i, view := range list.Items {
		response.Items[i] = newTransactionResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

type AddTransactionParams struct {
	UserID      string `binding:"required"                        json:"userId"`
	Amount      string `binding:"required,money"                  json:"amount"`
	Type        string `binding:"required,oneof=deposit withdraw" json:"type"`
	Description string `binding:"max=500"                         json:"description"`
}

// AddTransaction POST RouteGroup + TransactionsRoute. Ручная проводка.
func (h *BalanceHandler) AddTransaction(c *gin.Context) {
	var params AddTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	// сумма уже проверена тегом money
	amount, amountErr := decimal.NewFromString(params.Amount)
	if amountErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, amountErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.balanceService.AddTransaction(ctx, service.AddTransactionArgs{
		UserID:      params.UserID,
		Amount:      amount,
		Type:        domain.TransactionType(params.Type),
		Description: params.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("user not found")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(*view))
}
