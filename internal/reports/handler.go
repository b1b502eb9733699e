package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"budget-backend/internal/reporting"
	"budget-backend/internal/shared/server/respond"
	"budget-backend/internal/workbooks"
)

// Handler wires HTTP handlers to the report service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/workbooks/:id/report", h.report)
	rg.GET("/workbooks/:id/requests", h.requests)
	rg.GET("/workbooks/:id/requests/:requestId", h.analysis)
	rg.GET("/workbooks/:id/filters", h.filters)
}

func filtersFromQuery(c *gin.Context) reporting.Filters {
	return reporting.Filters{
		Fund:        c.Query("fund"),
		Department:  c.Query("department"),
		Division:    c.Query("division"),
		Program:     c.Query("program"),
		RequestType: c.Query("requestType"),
		Status:      c.Query("status"),
	}.Normalize()
}

func (h *Handler) report(c *gin.Context) {
	rep, err := h.Svc.Report(c.Request.Context(), c.Param("id"), filtersFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, rep)
}

func (h *Handler) requests(c *gin.Context) {
	results, err := h.Svc.Requests(c.Request.Context(), c.Param("id"), filtersFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, results)
}

func (h *Handler) analysis(c *gin.Context) {
	res, err := h.Svc.Analysis(c.Request.Context(), c.Param("id"), c.Param("requestId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, res)
}

func (h *Handler) filters(c *gin.Context) {
	opts, err := h.Svc.Filters(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, opts)
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workbooks.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "workbook not found", nil)
	case errors.Is(err, ErrRequestNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "request not found", nil)
	case errors.Is(err, workbooks.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build report", nil)
	}
}
