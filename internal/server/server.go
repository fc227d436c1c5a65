// Package server is the web visualizer: a gin router over a session.
package server

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/export"
	"github.com/pdrpinto/gridpath/internal/render"
	"github.com/pdrpinto/gridpath/internal/session"
)

//go:embed static/index.html
var indexHTML []byte

// Server serves one shared session. POST /init swaps in a fresh one.
type Server struct {
	mu      sync.RWMutex
	session *session.Session
	cfg     config.Config
	rng     *rand.Rand
}

// maxSide caps each side of a grid made by /init.
const maxSide = 256

// New creates a server around an existing session.
func New(s *session.Session, cfg config.Config, seed int64) *Server {
	return &Server{
		session: s,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (srv *Server) current() *session.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()
	return srv.session
}

// CORSMiddleware lets a separately served frontend call the API.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Router builds the gin engine with every route registered.
func (srv *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})
	router.POST("/init", srv.handleInit)
	router.GET("/state", srv.handleState)
	router.GET("/next", srv.handleNext)
	router.POST("/walls/toggle", srv.handleToggleWall)
	router.POST("/weights", srv.handleSetWeight)
	router.POST("/endpoints", srv.handleEndpoints)
	router.POST("/algorithm", srv.handleAlgorithm)
	router.GET("/walls", srv.handleWallDump)
	router.GET("/export.geojson", srv.handleExport)
	router.GET("/render.png", srv.handleRender)
	return router
}

// respondError maps domain errors to status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gridpath.ErrOutOfBounds),
		errors.Is(err, gridpath.ErrNegativeWeight),
		errors.Is(err, gridpath.ErrUnknownAlgorithm),
		errors.Is(err, gridpath.ErrInvalidDimensions):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrOccupied):
		status = http.StatusConflict
	}
	log.Printf("[WARN] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func queryInt(c *gin.Context, key string, fallback int, valid func(int) bool) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && valid(v) {
		return v
	}
	return fallback
}

func (srv *Server) handleInit(c *gin.Context) {
	side := func(v int) bool { return v > 4 && v <= maxSide }
	width := queryInt(c, "w", 40, side)
	height := queryInt(c, "h", 24, side)
	clusters := queryInt(c, "clusters", 8, func(v int) bool { return v > 0 })
	steps := queryInt(c, "steps", 200, func(v int) bool { return v > 0 })
	density := 0.25
	if v, err := strconv.ParseFloat(c.Query("density"), 64); err == nil && v >= 0 && v <= 1 {
		density = v
	}
	alg := srv.current().Algorithm()
	if name := c.Query("algorithm"); name != "" {
		parsed, err := gridpath.ParseAlgorithm(name)
		if err != nil {
			respondError(c, err)
			return
		}
		alg = parsed
	}

	srv.mu.Lock()
	grid, start, goal, err := randomLayout(srv.rng, width, height, clusters, steps, density)
	srv.mu.Unlock()
	if err != nil {
		respondError(c, err)
		return
	}
	next, err := session.New(c.Request.Context(), grid, start, goal, alg)
	if err != nil {
		respondError(c, err)
		return
	}

	srv.mu.Lock()
	previous := srv.session
	srv.session = next
	srv.mu.Unlock()
	previous.Close()

	log.Printf("[INFO] new %dx%d grid, %d walls, start=%v goal=%v", width, height, len(grid.Walls()), start, goal)
	c.JSON(http.StatusOK, newStateResponse(next.View()))
}

func (srv *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(srv.current().View()))
}

func (srv *Server) handleNext(c *gin.Context) {
	s := srv.current()
	// The replay outlives the request that advances it.
	snapshot, err := s.Step(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	view := s.View()
	c.JSON(http.StatusOK, newSnapshotResponse(snapshot, view))
}

type cellRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (r cellRequest) coord() gridpath.Coord { return gridpath.Coord{X: r.X, Y: r.Y} }

func (srv *Server) handleToggleWall(c *gin.Context) {
	var req cellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := srv.current()
	if _, err := s.ToggleWall(c.Request.Context(), req.coord()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(s.View()))
}

type weightRequest struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Cost int `json:"cost"`
}

func (srv *Server) handleSetWeight(c *gin.Context) {
	var req weightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := srv.current()
	if err := s.SetWeight(c.Request.Context(), gridpath.Coord{X: req.X, Y: req.Y}, req.Cost); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(s.View()))
}

type endpointsRequest struct {
	Start *cellRequest `json:"start"`
	Goal  *cellRequest `json:"goal"`
}

func (srv *Server) handleEndpoints(c *gin.Context) {
	var req endpointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var start, goal *gridpath.Coord
	if req.Start != nil {
		cell := req.Start.coord()
		start = &cell
	}
	if req.Goal != nil {
		cell := req.Goal.coord()
		goal = &cell
	}
	s := srv.current()
	if err := s.SetEndpoints(c.Request.Context(), start, goal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(s.View()))
}

type algorithmRequest struct {
	Name string `json:"name" binding:"required"`
}

func (srv *Server) handleAlgorithm(c *gin.Context) {
	var req algorithmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg, err := gridpath.ParseAlgorithm(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	s := srv.current()
	if err := s.SetAlgorithm(c.Request.Context(), alg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(s.View()))
}

func (srv *Server) handleWallDump(c *gin.Context) {
	c.JSON(http.StatusOK, cells(srv.current().Walls()))
}

func (srv *Server) handleExport(c *gin.Context) {
	data, err := export.Marshal(srv.current().View())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

func (srv *Server) handleRender(c *gin.Context) {
	cfg := srv.cfg
	cfg.TileSize = queryInt(c, "tile", cfg.TileSize, func(v int) bool { return v > 0 && v <= 128 })
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, srv.current().View(), cfg); err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
