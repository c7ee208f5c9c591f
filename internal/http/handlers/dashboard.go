package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lure/sales-dashboard/internal/config"
	"github.com/lure/sales-dashboard/internal/period"
	"github.com/lure/sales-dashboard/internal/service"
	"github.com/lure/sales-dashboard/internal/sheets"
)

// @Summary Dashboard overview
// @Description Headline cards plus the raw spreadsheet tabs
// @Tags dashboard
// @Produce json
// @Param sheetUrl query string false "XLSX export URL (defaults to SHEET_URL)"
// @Param skipCache query string false "Bypass the cache (true/1/yes)"
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	var q SheetQuery
	if !h.bind(c, &q) {
		return
	}
	d, err := h.Service.Dashboard(c.Request.Context(), q.SheetURL, truthy(q.SkipCache))
	if err != nil {
		h.sheetError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary Salesperson performance
// @Tags dashboard
// @Produce json
// @Param sheetUrl query string false "XLSX export URL"
// @Success 200 {object} map[string]any
// @Router /api/dashboard/vendedores [get]
func (h *Handler) Salespeople(c *gin.Context) {
	var q SheetQuery
	if !h.bind(c, &q) {
		return
	}
	rows, err := h.Service.Salespeople(c.Request.Context(), q.SheetURL)
	if err != nil {
		h.sheetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendedores": rows, "timestamp": h.now().UTC()})
}

// @Summary Campaign performance
// @Tags dashboard
// @Produce json
// @Param sheetUrl query string false "XLSX export URL"
// @Success 200 {object} map[string]any
// @Router /api/dashboard/campanhas [get]
func (h *Handler) Campaigns(c *gin.Context) {
	var q SheetQuery
	if !h.bind(c, &q) {
		return
	}
	rows, err := h.Service.Campaigns(c.Request.Context(), q.SheetURL)
	if err != nil {
		h.sheetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campanhas": rows, "timestamp": h.now().UTC()})
}

// @Summary Filtered leads
// @Tags dashboard
// @Produce json
// @Param sheetUrl query string false "XLSX export URL"
// @Param vendedor query string false "Exact closer name"
// @Param campanha query string false "Exact campaign name"
// @Param status query string false "Exact status"
// @Success 200 {object} map[string]any
// @Router /api/dashboard/leads [get]
func (h *Handler) Leads(c *gin.Context) {
	var q LeadsQuery
	if !h.bind(c, &q) {
		return
	}
	leads, err := h.Service.Leads(c.Request.Context(), q.SheetURL, service.LeadFilter{
		Closer:   q.Vendedor,
		Campaign: q.Campanha,
		Status:   q.Status,
	})
	if err != nil {
		h.sheetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(leads), "leads": leads, "timestamp": h.now().UTC()})
}

// @Summary Lead count per status
// @Tags dashboard
// @Produce json
// @Param sheetUrl query string false "XLSX export URL, defaults to SHEET_URL"
// @Success 200 {object} map[string]any
// @Router /api/dashboard/status [get]
func (h *Handler) Statuses(c *gin.Context) {
	var q SheetQuery
	if !h.bind(c, &q) {
		return
	}
	rows, err := h.Service.Statuses(c.Request.Context(), q.SheetURL)
	if err != nil {
		h.sheetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": rows, "timestamp": h.now().UTC()})
}

// @Summary Leaderboard
// @Description Top closers and SDRs. Live figures come from the sheet; without one
// @Description (or with DATA_SOURCE=demo) the current month of demo data is ranked.
// @Tags ranking
// @Produce json
// @Param sheetUrl query string false "XLSX export URL"
// @Param limit query int false "Entries per role (default 3)"
// @Success 200 {object} map[string]any
// @Router /api/dashboard/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	var q LeaderboardQuery
	if !h.bind(c, &q) {
		return
	}
	now := h.now()

	source := h.dataSource()
	if source == config.DataSourceAuto {
		source = config.DataSourceSheet
		if _, err := h.Service.ResolveURL(q.SheetURL); errors.Is(err, sheets.ErrNoSheetURL) {
			source = config.DataSourceDemo
		}
	}

	var lb service.Leaderboard
	if source == config.DataSourceDemo {
		res := h.Periods.Resolve(period.Query{PeriodType: period.Month, StartDate: now, EndDate: now})
		lb = service.BuildLeaderboard(res.Metrics, q.Limit)
	} else {
		var err error
		lb, err = h.Service.Leaderboard(c.Request.Context(), q.SheetURL, q.Limit)
		if err != nil {
			h.sheetError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"top":       lb,
		"quips":     service.TodayQuips(now),
		"source":    source,
		"timestamp": now.UTC(),
	})
}

// @Summary Cache status
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard/cache/status [get]
func (h *Handler) CacheStatus(c *gin.Context) {
	st, err := h.Service.CacheStatus(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "CACHE_UNAVAILABLE", "Cache unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"backend": st.Backend,
		"entries": st.Entries,
		"hasData": st.Entries > 0,
		"ttl":     h.CacheTTL.Milliseconds(),
	})
}

// @Summary Clear cache
// @Tags cache
// @Produce json
// @Param X-Admin-Key header string false "Admin key"
// @Success 200 {object} map[string]any
// @Router /api/dashboard/cache/clear [post]
func (h *Handler) ClearCache(c *gin.Context) {
	if err := h.Service.ClearCache(c.Request.Context()); err != nil {
		writeError(c, http.StatusInternalServerError, "CACHE_ERROR", "Failed to clear cache", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cache cleared"})
}
