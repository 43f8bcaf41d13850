// Package viz serves a browser view of searches. Each websocket connection
// owns its own grid; searches run on a separate goroutine and hand detached
// snapshots to the connection writer, so the grid is never shared.
package viz

import (
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mtxik/AStarGrid/internal/runner"
)

//go:embed static/index.html
var static embed.FS

// Options configures a Server.
type Options struct {
	Width     int           // pixel width used for new grids
	MaxRows   int           // upper bound for rows requested by clients
	StepDelay time.Duration // pause after every step so the browser can follow
	Gatherer  prometheus.Gatherer
	Logger    *slog.Logger
}

// Server is the HTTP side of the viewer.
type Server struct {
	runner   *runner.Runner
	opts     Options
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer builds a viewer that runs searches with r.
func NewServer(r *runner.Runner, opts Options) *Server {
	if opts.MaxRows <= 0 {
		opts.MaxRows = 200
	}
	if opts.Width < opts.MaxRows {
		opts.Width = opts.MaxRows
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		runner: r,
		opts:   opts,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the gin engine with all routes.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		page, err := static.ReadFile("static/index.html")
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "heuristic": s.runner.Heuristic()})
	})
	r.GET("/ws", s.handleWS)
	if s.opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))
	}
	return r
}

func (s *Server) handleWS(c *gin.Context) {
	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error("failed to upgrade the websocket", "error", err)
		return
	}
	id := uuid.New().String()
	s.logger.Info("viewer connected", "session", id, "remote", c.Request.RemoteAddr)

	sess := newSession(id, ws, s)
	sess.serve(c.Request.Context())

	s.logger.Info("viewer disconnected", "session", id)
}
