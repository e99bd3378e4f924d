package api

import (
	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "unknown metric",
		1101: "date range not allowed",

		1200: "cannot fetch historical data",
		1201: dashboard.ErrSuperseded.Error(),

		1300: chart.ErrNotEnoughData.Error(),
		1301: "unknown chart",
	}

	errorInternalServer     = errorJSON(999)
	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUnknownMetric    = errorJSON(1100)
	errorInvalidDateRange = errorJSON(1101)

	errorFetchHistorical   = errorJSON(1200)
	errorRequestSuperseded = errorJSON(1201)

	errorNotEnoughData = errorJSON(1300)
	errorUnknownChart  = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
