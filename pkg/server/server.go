// Package server exposes a session over HTTP. Requests are serialized
// because a session and its environment are single-threaded.
package server

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oarkflow/json"
	"github.com/oarkflow/log"

	"github.com/vic/lcalc/pkg/session"
)

type EvalRequest struct {
	Line string `json:"line"`
}

type ErrorResponse struct {
	Message    string `json:"message"`
	Column     int    `json:"column,omitempty"`
	Diagnostic string `json:"diagnostic"`
}

type EvalResponse struct {
	Session string          `json:"session"`
	Result  *session.Result `json:"result,omitempty"`
	Output  string          `json:"output,omitempty"`
	Error   *ErrorResponse  `json:"error,omitempty"`
}

type NamesResponse struct {
	Names []string `json:"names"`
}

type Server struct {
	app     *fiber.App
	mu      sync.Mutex
	session *session.Session
	logger  *log.Logger
}

func New(s *session.Session, logger *log.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder: func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": ErrorResponse{Message: err.Error()},
			})
		},
	})

	srv := &Server{
		app:     app,
		session: s,
		logger:  logger,
	}
	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	s.app.Get("/api/health", s.healthHandler)
	s.app.Post("/api/eval", s.evalHandler)
	s.app.Get("/api/names", s.namesHandler)
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	s.logger.Info().Str("address", addr).Str("session", s.session.ID()).Msg("server listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) evalHandler(c *fiber.Ctx) error {
	var req EvalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	start := time.Now()
	s.mu.Lock()
	res, err := s.session.Eval(req.Line)
	s.mu.Unlock()
	duration := time.Since(start)

	resp := EvalResponse{Session: s.session.ID()}
	if err != nil {
		resp.Error = &ErrorResponse{
			Message:    err.Error(),
			Column:     session.Column(err),
			Diagnostic: session.Diagnostic(req.Line, err),
		}
		if errors.Is(err, session.ErrEmptyLine) {
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}
		s.logger.Warn().Err(err).Dur("duration", duration).Msg("evaluation failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
	}

	s.logger.Info().Str("kind", res.Kind.String()).Uint64("steps", res.Steps).Dur("duration", duration).Msg("evaluation succeeded")
	resp.Result = res
	resp.Output = res.Format()
	return c.JSON(resp)
}

func (s *Server) namesHandler(c *fiber.Ctx) error {
	s.mu.Lock()
	names := s.session.Environment().Names()
	s.mu.Unlock()
	return c.JSON(NamesResponse{Names: names})
}
