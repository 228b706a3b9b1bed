package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
)

type InstallmentsHandler struct {
	installmentService InstallmentServicer
}

func NewInstallmentsHandler(installmentService InstallmentServicer) *InstallmentsHandler {
	return &InstallmentsHandler{
		installmentService: installmentService,
	}
}

type InstallmentsIndexParams struct {
	ListQueryParams
	Status string `binding:"omitempty,oneof=all paid pending overdue" form:"status"`
}

type InstallmentListResponse struct {
	Items   []InstallmentResponse `json:"items"`
	Summary core.Summary          `json:"summary"`
	Stale   bool                  `json:"stale"`
}

// Index GET RouteGroup + InstallmentsRoute.
func (h *InstallmentsHandler) Index(c *gin.Context) {
	var params InstallmentsIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.installmentService.List(ctx, params.toListQuery(params.Status))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := InstallmentListResponse{
		Items:   make([]InstallmentResponse, len(list.Items)),
		Summary: list.Summary,
		Stale:   list.Stale,
	}
	for i, view := range list.Items {
		response.Items[i] = newInstallmentResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

type RecordPaymentParams struct {
	PaidDate string `binding:"required" json:"paidDate"`
}

// RecordPayment POST RouteGroup + InstallmentPaymentRoute. Дата оплаты
// обязательна; платеж без нее не фиксируется.
func (h *InstallmentsHandler) RecordPayment(c *gin.Context) {
	var params RecordPaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	paidAt, parseErr := parsePaidDate(params.PaidDate)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("invalid paid date")).
			SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.installmentService.RecordPayment(ctx, c.Param("id"), paidAt)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaidDateRequired):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}
	c.JSON(http.StatusOK, newInstallmentResponse(*view))
}

func parsePaidDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unparsable paid date")
}
