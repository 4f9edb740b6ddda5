package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/gestor-ventas-api/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	headerRequestID = "X-Request-ID"
	localLogger     = "logger"
)

// RequestLogger asigna un request id (reutiliza X-Request-ID si llega), deja un
// sublogger de la petición en locals y en el UserContext, y escribe un evento al final.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(headerRequestID, reqID)

		reqLog := l.ForRequest(logger.Request{ID: reqID, Method: c.Method(), Path: c.Path(), IP: c.IP()})
		c.Locals(localLogger, &reqLog)
		c.SetUserContext(logger.WithContext(c.UserContext(), reqLog))

		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := reqLog.WithLevel(logger.StatusLevel(status))
		if status >= 500 {
			ev = ev.Err(err)
		}
		ev.Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// RequestLog devuelve el logger de la petición o el global si RequestLogger no corrió.
func RequestLog(c *fiber.Ctx) *zerolog.Logger {
	if zl, ok := c.Locals(localLogger).(*zerolog.Logger); ok {
		return zl
	}
	return logger.FromContext(c.UserContext())
}
