package middleware

import (
	"log/slog"
	"time"

	"bizdir/config"
	deliverycontext "bizdir/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// defaultSlowRequestThreshold flags requests, typically large import batches, worth a closer look.
const defaultSlowRequestThreshold = 5 * time.Second

// LoggerMiddleware logs request details for every request in debug mode and for slow
// requests otherwise. Routine access logging is left to slog-echo.
type LoggerMiddleware struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:        logger,
		debug:         config.Env.Debug,
		slowThreshold: defaultSlowRequestThreshold,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		latency := time.Since(start)
		if m.debug || latency >= m.slowThreshold {
			m.logRequest(c, latency, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.Int64("request_bytes", req.ContentLength),
		slog.Int64("response_bytes", res.Size),
		slog.String("remote_ip", c.RealIP()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	message := "HTTP request"
	logLevel := slog.LevelDebug
	if latency >= m.slowThreshold {
		message = "Slow HTTP request"
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	logger := deliverycontext.LoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, message, fields...)
}
