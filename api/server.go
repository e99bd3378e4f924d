package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/logmodule"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// dashboard state driven by the controls
	session *dashboard.Session

	// fetch + normalize for one-shot requests
	loader dashboard.Loader

	allowedDays []int
	defaultLang string
	chartSize   chart.Size
}

// NewServer new instance of server
func NewServer(session *dashboard.Session, loader dashboard.Loader) *Server {
	allowed := viper.GetIntSlice("dashboard.allowed_days")
	if len(allowed) == 0 {
		allowed = consts.DateRanges
	}

	lang := viper.GetString("i18n.lang")
	if lang == "" {
		lang = language.English.String()
	}

	return &Server{
		session:     session,
		loader:      loader,
		allowedDays: allowed,
		defaultLang: lang,
		chartSize: chart.Size{
			Width:  viper.GetInt("chart.width"),
			Height: viper.GetInt("chart.height"),
		},
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "PATCH"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)
	apiRoute.GET("/series", s.getSeries)

	dashboardRoute := apiRoute.Group("/dashboard")
	{
		dashboardRoute.GET("", s.getDashboard)
		dashboardRoute.PATCH("", s.updateDashboard)
	}

	apiRoute.GET("/charts/:kind", s.getChart)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	state := s.session.State()

	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"version":     viper.GetString("server.version"),
		"loaded_days": state.LoadedRange,
		"updated_at":  state.UpdatedAt,
	})
}

func (s *Server) information(c *gin.Context) {
	state := s.session.State()

	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"metrics":     schema.Metrics,
			"date_ranges": s.allowedDays,
			"defaults": map[string]interface{}{
				"metric": state.SelectedMetric,
				"days":   state.DateRange,
				"lang":   s.defaultLang,
			},
		},
	})
}

// language picks the display language from the lang query, then the
// Accept-Language header, then the configured default.
func (s *Server) language(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return tag.String()
		}
	}

	if tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language")); err == nil && len(tags) > 0 {
		return tags[0].String()
	}

	return s.defaultLang
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
