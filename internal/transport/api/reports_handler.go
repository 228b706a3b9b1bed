package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/lendboard/internal/service"
)

type ReportsHandler struct {
	reportService ReportServicer
}

func NewReportsHandler(reportService ReportServicer) *ReportsHandler {
	return &ReportsHandler{
		reportService: reportService,
	}
}

// Show GET RouteGroup + ReportRoute.
func (h *ReportsHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.reportService.Build(ctx, service.ReportKind(c.Param("kind")))
	if err != nil {
		if errors.Is(err, service.ErrUnknownReportKind) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, report)
}
