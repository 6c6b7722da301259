package ui

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"commtrack/app"
	"commtrack/internal/errors"
	"commtrack/internal/logger"
)

// Response is the success/error envelope every API endpoint returns.
// Faults travel in the body with HTTP 200; success:false is the only
// failure signal callers get.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// Server is the HTTP surface over the deal extraction pipeline.
type Server struct {
	router *gin.Engine
	deals  *app.DealService
}

// NewServer wires the router, middleware and routes.
func NewServer(deals *app.DealService, ginMode string) *Server {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	router := gin.New()
	router.Use(RequestID(), AccessLog(), gin.Recovery())

	s := &Server{router: router, deals: deals}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/", s.handleDocs)
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/deals", s.handleDeals)
	s.router.GET("/api/deals/summary", s.handleSummary)
}

// Handler exposes the router for main's http.Server and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleDeals(c *gin.Context) {
	deals, err := s.deals.Deals(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, deals)
}

func (s *Server) handleSummary(c *gin.Context) {
	summary, err := s.deals.Summarize(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, summary)
}

func (s *Server) ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) fail(c *gin.Context, err error) {
	logger.Log.Error("request failed",
		zap.String("id", c.GetString(ctxRequestID)),
		zap.String("code", errors.GetCode(err)),
		zap.Error(err))
	c.JSON(http.StatusOK, Response{Success: false, Error: err.Error()})
}
