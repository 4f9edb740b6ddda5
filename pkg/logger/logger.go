package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env   string    // development -> consola legible; production -> JSON
	Level string    // trace, debug, info, warn, error
	Out   io.Writer // por defecto os.Stdout
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado. En development usa salida legible; en production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Out != nil {
		w = cfg.Out
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info, Warn, Error y Fatal delegados a zerolog; el resto del código usa el logger global.
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Request datos fijos de una petición HTTP.
type Request struct {
	ID     string
	Method string
	Path   string
	IP     string
}

// ForRequest crea un sublogger con request_id, method, path e ip.
// Campos vacíos no se agregan.
func (l *Logger) ForRequest(r Request) zerolog.Logger {
	ctx := l.zl.With()
	for _, f := range [...]struct{ key, val string }{
		{"request_id", r.ID},
		{"method", r.Method},
		{"path", r.Path},
		{"ip", r.IP},
	} {
		if f.val != "" {
			ctx = ctx.Str(f.key, f.val)
		}
	}
	return ctx.Logger()
}

// WithContext guarda el logger en ctx.
func WithContext(ctx context.Context, zl zerolog.Logger) context.Context {
	return zl.WithContext(ctx)
}

// FromContext devuelve el logger guardado con WithContext o, si no hay, el global.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if zl := zerolog.Ctx(ctx); zl.GetLevel() != zerolog.Disabled {
			return zl
		}
	}
	return &log.Logger
}

// StatusLevel nivel para un status HTTP: error desde 500, warn desde 400, info el resto.
func StatusLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
