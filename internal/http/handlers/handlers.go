package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/lure/sales-dashboard/internal/config"
	"github.com/lure/sales-dashboard/internal/period"
	"github.com/lure/sales-dashboard/internal/service"
	"github.com/lure/sales-dashboard/internal/sheets"
)

const sheetURLExample = "/api/dashboard?sheetUrl=https://docs.google.com/spreadsheets/d/<id>/export?format=xlsx"

type Handler struct {
	Service    *service.DashboardService
	Periods    *period.Resolver
	Validator  *validator.Validate
	Logger     zerolog.Logger
	DataSource string
	CacheTTL   time.Duration
	Now        func() time.Time
}

type SheetQuery struct {
	SheetURL  string `form:"sheetUrl" validate:"omitempty,url"`
	SkipCache string `form:"skipCache" validate:"omitempty,oneof=0 1 true false yes no"`
}

type LeadsQuery struct {
	SheetQuery
	Vendedor string `form:"vendedor"`
	Campanha string `form:"campanha"`
	Status   string `form:"status"`
}

type LeaderboardQuery struct {
	SheetQuery
	Limit int `form:"limit" validate:"omitempty,min=1,max=50"`
}

type SalesDataQuery struct {
	PeriodType string `form:"periodType" validate:"omitempty,oneof=month week custom"`
	StartDate  string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

type QuipsQuery struct {
	Date string `form:"date" validate:"omitempty,datetime=2006-01-02"`
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	st, err := h.Service.CacheStatus(ctx)
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "CACHE_UNAVAILABLE", "Cache unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cache": st.Backend, "dataSource": h.DataSource})
}

// bind reads query parameters into dst and validates them.
func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return false
	}
	if err := h.Validator.Struct(dst); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return false
	}
	return true
}

func (h *Handler) sheetError(c *gin.Context, err error) {
	if errors.Is(err, sheets.ErrNoSheetURL) {
		writeError(c, http.StatusBadRequest, "MISSING_SHEET_URL", `Query parameter "sheetUrl" is required`, gin.H{"example": sheetURLExample})
		return
	}
	_ = c.Error(err)
	writeError(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load spreadsheet", err.Error())
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *Handler) dataSource() string {
	if h.DataSource == "" {
		return config.DataSourceAuto
	}
	return h.DataSource
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func parseDay(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}
	}
	return t
}
