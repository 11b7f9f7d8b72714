// Package devserver is a local stand-in for the counter API. It serves the
// host page, the WASM assets and a counter endpoint with the same contract
// as the production function.
package devserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vcrobe/visitorcounter/config"
	"github.com/vcrobe/visitorcounter/console"
	"github.com/vcrobe/visitorcounter/counter"
	"github.com/vcrobe/visitorcounter/vdom"
	"github.com/vcrobe/visitorcounter/web"
)

// CounterPath is where the counter endpoint is mounted.
const CounterPath = "/api/VisitorCounter"

// VisitorCookie holds the id assigned to a browser on its first visit.
const VisitorCookie = "vc_visitor"

// Options configures a Server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// AllowOrigins lists origins allowed by CORS. Empty allows every origin.
	AllowOrigins []string
	// AssetsDir holds counter.wasm and wasm_exec.js. Empty disables /assets.
	AssetsDir string
	// Widget supplies the container id and region class for the host page.
	// An empty Widget.Endpoint makes the page point at this server.
	Widget config.Config
	// Debug keeps gin in debug mode.
	Debug bool
}

// Server is the dev HTTP server.
type Server struct {
	store  Store
	opts   Options
	page   *template.Template
	engine *gin.Engine
}

// New builds the router.
func New(store Store, opts Options) (*Server, error) {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	page, err := web.IndexTemplate()
	if err != nil {
		return nil, fmt.Errorf("parse host page: %w", err)
	}

	s := &Server{store: store, opts: opts, page: page}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware())
	router.Use(cors.New(corsConfig(opts.AllowOrigins)))

	router.GET("/", s.index)
	router.GET("/healthz", s.health)
	router.GET(CounterPath, s.visitorCounter)
	router.StaticFS("/static", http.FS(web.Static()))
	if opts.AssetsDir != "" {
		router.Static("/assets", opts.AssetsDir)
	}

	s.engine = router
	return s, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Handler returns the router for use with httptest or another server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		console.Log("dev server listening on", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) visitorCounter(c *gin.Context) {
	if c.Query("fail") != "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "simulated failure"})
		return
	}

	visitor, err := c.Cookie(VisitorCookie)
	if err != nil || visitor == "" {
		visitor = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(VisitorCookie, visitor, int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
	}

	n, err := s.store.RecordVisit(c.Request.Context(), visitor)
	if err != nil {
		console.Error("record visit:", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record visit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (s *Server) health(c *gin.Context) {
	n, err := s.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	visitors, err := s.store.Visitors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "count": n, "visitors": visitors})
}

func (s *Server) index(c *gin.Context) {
	regionClass := s.opts.Widget.RegionClass
	if regionClass == "" {
		regionClass = counter.DefaultRegionClass
	}
	region, err := vdom.ToHTML(counter.View(regionClass, counter.Loading(), false))
	if err != nil {
		c.String(http.StatusInternalServerError, "render region: %v", err)
		return
	}

	endpoint := s.opts.Widget.Endpoint
	if endpoint == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		endpoint = scheme + "://" + c.Request.Host + CounterPath
	}
	containerID := s.opts.Widget.ContainerID
	if containerID == "" {
		containerID = config.Default().ContainerID
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, web.Page{
		ContainerID: containerID,
		Endpoint:    endpoint,
		Region:      template.HTML(region),
	}); err != nil {
		c.String(http.StatusInternalServerError, "render page: %v", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		console.Log(fmt.Sprintf("[%s] %s - %d (%v)", c.Request.Method, path, c.Writer.Status(), time.Since(start)))
	}
}
