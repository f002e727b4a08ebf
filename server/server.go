package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"fluidlevel/calculator"
	"fluidlevel/chart"
	"fluidlevel/config"
	"fluidlevel/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
	solver   *calculator.Solver
	executor *calculator.Executor
	router   *gin.Engine
	render   func(w io.Writer, res model.LevelResult, size chart.Size, format string) error
}

func NewServer(cfg *config.Config, upgrader websocket.Upgrader) *Server {
	gin.SetMode(cfg.Mode)
	solver := calculator.NewSolver(cfg.Step)
	s := &Server{
		cfg:      cfg,
		upgrader: upgrader,
		solver:   solver,
		executor: calculator.NewExecutor(solver, cfg.Workers),
		render:   chart.Render,
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET(s.cfg.WsPath, func(c *gin.Context) {
		s.serveWs(c.Writer, c.Request)
	})

	well := r.Group("/well")
	well.POST("/calc_level", s.handleCalcLevel)
	well.POST("/calc_levels", s.handleCalcLevels)
	well.POST("/calc_level/chart", s.handleChart)
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("server listening")
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

// calcLevel runs a single solve and converts the result to its wire form.
func (s *Server) calcLevel(req model.WellRequest) (model.LevelResult, error) {
	id := uuid.NewString()
	params, pip := calculator.FromRequest(req)
	entry := log.WithFields(log.Fields{
		"request_id": id,
		"well_id":    req.WellID,
		"pip":        pip,
	})

	start := time.Now()
	res, err := s.solver.SolveParams(params, pip)
	if err != nil {
		entry.WithError(err).Warn("calc level failed")
		return model.LevelResult{}, err
	}
	out := res.Output()
	out.RequestID = id
	out.WellID = req.WellID
	entry.WithFields(log.Fields{
		"fluid_level": out.Level,
		"state":       out.State,
		"cost":        time.Since(start),
	}).Info("calc level done")
	return out, nil
}

func statusOf(err error) int {
	if errors.Is(err, calculator.ErrInvalidConfiguration) || errors.Is(err, calculator.ErrInvalidIntakePressure) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, code int, err error) {
	c.JSON(code, model.Response{Status: model.StatusError, Message: err.Error()})
}

func (s *Server) handleCalcLevel(c *gin.Context) {
	var req model.WellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	out, err := s.calcLevel(req)
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, model.Response{Status: model.StatusSuccess, Data: out})
}

func (s *Server) handleCalcLevels(c *gin.Context) {
	var req model.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	jobs := make([]calculator.Job, len(req.Wells))
	for i, w := range req.Wells {
		params, pip := calculator.FromRequest(w)
		jobs[i] = calculator.Job{ID: uuid.NewString(), WellID: w.WellID, Params: params, PIP: pip}
	}
	outcomes, err := s.executor.Run(c.Request.Context(), jobs)
	if err != nil {
		fail(c, http.StatusServiceUnavailable, err)
		return
	}

	items := make([]model.BatchItem, len(outcomes))
	for i, o := range outcomes {
		items[i].WellID = o.Job.WellID
		if o.Err != nil {
			items[i].Message = o.Err.Error()
			continue
		}
		out := o.Result.Output()
		out.RequestID = o.Job.ID
		out.WellID = o.Job.WellID
		items[i].Result = &out
	}
	c.JSON(http.StatusOK, model.Response{Status: model.StatusSuccess, Data: items})
}

var chartTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

func (s *Server) handleChart(c *gin.Context) {
	format := c.DefaultQuery("format", "png")
	contentType, ok := chartTypes[format]
	if !ok {
		fail(c, http.StatusBadRequest, errors.New("unsupported chart format: "+format))
		return
	}
	var req model.WellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	out, err := s.calcLevel(req)
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}

	var buf bytes.Buffer
	size := chart.SizeCm(s.cfg.ChartWidth, s.cfg.ChartHeight)
	if err := s.render(&buf, out, size, format); err != nil {
		log.WithError(err).WithField("request_id", out.RequestID).Error("render chart failed")
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("X-Request-Id", out.RequestID)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("request")
	}
}
