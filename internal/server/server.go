package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/config"
	"github.com/shinyyama/astro-edit-backend/internal/handler"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
	"github.com/shinyyama/astro-edit-backend/internal/service"
)

type Server struct {
	e *echo.Echo
}

func New(cfg *config.Config, svc service.ProcessService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, rid string) {
			c.SetRequest(c.Request().WithContext(reqctx.WithRID(c.Request().Context(), rid)))
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("rid", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{echo.HeaderContentType},
		AllowOriginFunc: originAllowed(cfg.AllowedOriginSuffixes),
	}))

	processHandler := handler.NewProcessHandler(svc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    cfg.GitSHA,
			"build_time": cfg.BuildTime,
		})
	})

	api := e.Group("/api")
	api.GET("/presets", handler.ListPresets)
	api.POST("/process", processHandler.Process, middleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB)))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func originAllowed(suffixes []string) func(origin string) (bool, error) {
	return func(origin string) (bool, error) {
		low := strings.ToLower(origin)
		if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
			strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
			return true, nil
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false, nil
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return false, nil
		}
		host := strings.ToLower(u.Hostname())
		for _, s := range suffixes {
			s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
			if s != "" && (host == s || strings.HasSuffix(host, "."+s)) {
				return true, nil
			}
		}
		return false, nil
	}
}

// errorHandler renders errors raised by echo itself (body limit, routing,
// recovered panics) with the same {"error": ...} body as the handlers.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok && m != "" {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	}
	if status >= http.StatusInternalServerError {
		log.Error().Str("rid", reqctx.RID(c.Request().Context())).Int("status", status).Err(err).Msg("request failed")
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, handler.NewErrorResponse(msg))
}
