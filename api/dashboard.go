package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

type dashboardUpdate struct {
	Metric *string `json:"metric"`
	Days   *int    `json:"days"`
}

type seriesQueryParams struct {
	Days   int    `form:"days"`
	Metric string `form:"metric"`
}

func (s *Server) getDashboard(c *gin.Context) {
	view := dashboard.Localize(s.session.View(), s.language(c))
	c.JSON(http.StatusOK, gin.H{"dashboard": view})
}

// updateDashboard applies the metric and date range controls. A failed
// load leaves the previous data in place and still answers with the view.
func (s *Server) updateDashboard(c *gin.Context) {
	var req dashboardUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if req.Metric == nil && req.Days == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var metric schema.MetricType
	if req.Metric != nil {
		m, err := schema.ParseMetric(*req.Metric)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
			return
		}
		metric = m
	}

	if req.Days != nil && !consts.AllowedDateRange(*req.Days, s.allowedDays) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDateRange)
		return
	}

	if metric != "" {
		if err := s.session.SetMetric(metric); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
			return
		}
	}

	if req.Days != nil {
		err := s.session.SetDateRange(c.Request.Context(), *req.Days)
		switch {
		case errors.Is(err, dashboard.ErrSuperseded):
			abortWithEncoding(c, http.StatusConflict, errorRequestSuperseded, err)
			return
		case err != nil:
			log.WithField("days", *req.Days).WithError(err).Warn("serve previous data")
		}
	}

	view := dashboard.Localize(s.session.View(), s.language(c))
	c.JSON(http.StatusOK, gin.H{"dashboard": view})
}

// getSeries runs the whole pipeline for the requested parameters without
// touching the dashboard session.
func (s *Server) getSeries(c *gin.Context) {
	var params seriesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	metric := consts.DefaultMetric
	if params.Metric != "" {
		m, err := schema.ParseMetric(params.Metric)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
			return
		}
		metric = m
	}

	days := params.Days
	if days == 0 {
		days = consts.DefaultDateRange
	}
	if !consts.AllowedDateRange(days, s.allowedDays) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDateRange)
		return
	}

	result, err := s.loader.Load(c.Request.Context(), days)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorFetchHistorical, err)
		return
	}

	view := dashboard.Render(schema.State{
		SelectedMetric: metric,
		DateRange:      days,
		LoadedRange:    days,
		Data:           result.Points,
		UpdatedAt:      time.Now(),
	})

	c.JSON(http.StatusOK, gin.H{
		"dashboard": dashboard.Localize(view, s.language(c)),
		"skipped":   len(result.Skipped),
	})
}
