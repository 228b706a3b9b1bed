package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/service"
)

type LoansHandler struct {
	loanService LoanServicer
}

func NewLoansHandler(loanService LoanServicer) *LoansHandler {
	return &LoansHandler{
		loanService: loanService,
	}
}

type LoansIndexParams struct {
	ListQueryParams
	Status string `binding:"omitempty,oneof=all pending approved ongoing completed rejected" form:"status"`
	Tab    string `binding:"omitempty,oneof=all requests active history"                     form:"tab"`
}

type LoanListResponse struct {
	Items   []LoanResponse `json:"items"`
	Summary core.Summary   `json:"summary"`
	Stale   bool           `json:"stale"`
}

// Index GET RouteGroup + LoansRoute.
func (h *LoansHandler) Index(c *gin.Context) {
	var params LoansIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.loanService.List(ctx, service.LoanQuery{
		ListQuery: params.toListQuery(params.Status),
		Tab:       service.LoanTab(params.Tab),
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := LoanListResponse{
		Items:   make([]LoanResponse, len(list.Items)),
		Summary: list.Summary,
		Stale:   list.Stale,
	}
	for i, view := range list.Items {
		response.Items[i] = newLoanResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

// Approve POST RouteGroup + LoanApproveRoute.
func (h *LoansHandler) Approve(c *gin.Context) {
	h.applyAction(c, core.ActionApprove)
}

// Reject POST RouteGroup + LoanRejectRoute.
func (h *LoansHandler) Reject(c *gin.Context) {
	h.applyAction(c, core.ActionReject)
}

func (h *LoansHandler) applyAction(c *gin.Context, action core.LoanAction) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.loanService.ApplyAction(ctx, c.Param("id"), action)
	if err != nil {
		var transitionErr *domain.InvalidTransitionError

		switch {
		case errors.As(err, &transitionErr):
			_ = c.AbortWithError(http.StatusConflict, transitionErr).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			// в лог уходит и инициатор действия
			_ = c.AbortWithError(
				http.StatusBadGateway,
				fmt.Errorf("admin %s: %w", getUserIDFromContext(c), err),
			).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newLoanResponse(*view))
}
