package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
)

const (
	chartLine    = "line"
	chartBar     = "bar"
	chartScatter = "scatter"
)

func (s *Server) getChart(c *gin.Context) {
	view := s.session.View()
	titles := dashboard.Titles(view.Metric, s.language(c))

	var img []byte
	var err error

	switch c.Param("kind") {
	case chartLine:
		img, err = chart.Line(view.Series, view.Metric, titles.Line, s.chartSize)
	case chartBar:
		img, err = chart.Bar(view.DailyChanges, titles.Bar, s.chartSize)
	case chartScatter:
		img, err = chart.Scatter(view.Scatter, titles.Scatter, s.chartSize)
	default:
		abortWithEncoding(c, http.StatusNotFound, errorUnknownChart)
		return
	}

	if errors.Is(err, chart.ErrNotEnoughData) {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorNotEnoughData)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}
