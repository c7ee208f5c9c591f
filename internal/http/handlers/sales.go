package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lure/sales-dashboard/internal/period"
	"github.com/lure/sales-dashboard/internal/service"
)

// @Summary Sales data by period
// @Description Demo figures for the period selector. Week and custom periods are fractions of the month.
// @Tags sales
// @Produce json
// @Param periodType query string false "month, week or custom"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} period.Result
// @Failure 400 {object} map[string]any
// @Router /api/sales-data [get]
func (h *Handler) SalesData(c *gin.Context) {
	var q SalesDataQuery
	if !h.bind(c, &q) {
		return
	}
	res := h.Periods.Resolve(period.Query{
		PeriodType: period.ParseType(q.PeriodType),
		StartDate:  parseDay(q.StartDate),
		EndDate:    parseDay(q.EndDate),
	})
	c.JSON(http.StatusOK, res)
}

// @Summary Ranking quips
// @Tags ranking
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} service.Quips
// @Router /api/quips [get]
func (h *Handler) Quips(c *gin.Context) {
	var q QuipsQuery
	if !h.bind(c, &q) {
		return
	}
	d := parseDay(q.Date)
	if d.IsZero() {
		d = h.now()
	}
	c.JSON(http.StatusOK, service.TodayQuips(d))
}
