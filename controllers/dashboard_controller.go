package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontend-go/config"
	"frontend-go/middleware"
	"frontend-go/services"
	"frontend-go/workers"
)

var statsRefresher *workers.StatsRefresher

// InitDashboard wires the dashboard to the background stats refresher
func InitDashboard(refresher *workers.StatsRefresher) {
	statsRefresher = refresher
}

// Dashboard renders the admin usage dashboard for the chosen range
func Dashboard(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	statsRange := c.Query("range")
	if statsRange == "" {
		statsRange = "month"
	}

	ranges, err := services.GetRange(c.Request.Context(), session.Token)
	if err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		config.Log.WithError(err).Warn("Gagal memuat opsi rentang dashboard")
	}

	// refresh synchronously through the generation guard, then read the
	// committed snapshot: overlapping range switches keep the last one
	statsRefresher.Refresh(session.Token, statsRange)
	stats, _ := statsRefresher.Snapshot()

	data := gin.H{
		"Ranges":        ranges,
		"SelectedRange": statsRange,
		"Stats":         stats,
	}
	if stats == nil {
		data["Flash"] = "Gagal memuat statistik dashboard"
	}
	render(c, http.StatusOK, "dashboard.html", data)
}

// DashboardStatsJSON feeds the chart re-render when the range picker
// changes without a full page load
func DashboardStatsJSON(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	statsRange := c.Query("range")
	if statsRange == "" {
		statsRange = "month"
	}

	stats, err := services.GetStats(c.Request.Context(), session.Token, statsRange)
	if err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
