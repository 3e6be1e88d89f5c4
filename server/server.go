// Package server exposes the climb engine over HTTP using gin.
//
// Routes:
//
//   - POST /api/climb  body: raw grid text; response: Response JSON.
//   - GET  /healthz    liveness plus cache occupancy.
//
// Identical bodies are answered from an in-memory cache keyed by xxh3.
package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/solve"
)

// Response is the body returned by POST /api/climb.
type Response struct {
	solve.Answer
	TimeTakenMs float64 `json:"timeTakenMs"`
	Cached      bool    `json:"cached"`
}

// Server answers climb queries over HTTP.
type Server struct {
	addr     string
	maxBody  int64
	strategy climb.Strategy
	lowest   heightmap.Elevation
	quiet    bool
	cache    *resultCache
	engine   *gin.Engine
}

// New builds a Server from a validated configuration.
func New(cfg *config.Config) *Server {
	s := &Server{
		addr:     cfg.Server.Addr,
		maxBody:  cfg.Server.MaxBodyBytes,
		strategy: cfg.Strategy(),
		lowest:   cfg.LowestElevation(),
		quiet:    cfg.Logging.Quiet,
		cache:    newResultCache(cfg.CacheEntries()),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if !s.quiet {
		r.Use(gin.Logger())
	}
	r.POST("/api/climb", s.climbHandler)
	r.GET("/healthz", s.healthHandler)
	s.engine = r
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address until the listener fails.
func (s *Server) Run() error {
	log.Printf("[INFO] Listening on %s (strategy=%s, cache=%d)", s.addr, s.strategy, s.cache.size)
	return s.engine.Run(s.addr)
}

func (s *Server) climbHandler(c *gin.Context) {
	start := time.Now()
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "grid exceeds " + humanize.IBytes(uint64(s.maxBody))})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	key := cacheKey(body)
	if a, ok := s.cache.get(key); ok {
		c.JSON(http.StatusOK, Response{Answer: a, TimeTakenMs: elapsedMs(start), Cached: true})
		return
	}

	g, err := heightmap.Parse(bytes.NewReader(body))
	if err != nil {
		if !s.quiet {
			log.Printf("[WARN] Rejected grid: %v", err)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := solve.Run(g, s.strategy, s.lowest)
	if err != nil {
		log.Printf("[WARN] Search failed: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.cache.put(key, a)

	if !s.quiet {
		log.Printf("[INFO] Solved %s-cell grid: steps=%d best=%d visited=%s",
			humanize.Comma(int64(g.Cells())), a.Steps, a.BestSteps, humanize.Comma(int64(a.NodesVisited)))
	}
	c.JSON(http.StatusOK, Response{Answer: a, TimeTakenMs: elapsedMs(start)})
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cached": s.cache.len()})
}

func elapsedMs(since time.Time) float64 {
	return float64(time.Since(since).Microseconds()) / 1000
}
