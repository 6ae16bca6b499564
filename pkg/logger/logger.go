package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ArjunTewari/plexora/pkg/config"
)

// New arma el logger del proceso a partir de la configuración.
// development escribe en consola legible; cualquier otro entorno emite JSON.
// Con LOG_FILE definido se agrega un archivo JSON rotado por lumberjack.
// El logger resultante también queda como logger global de zerolog.
func New(app config.AppConfig, cfg config.LogConfig) zerolog.Logger {
	zl := zerolog.New(writer(os.Stdout, app.Env, cfg)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", app.Name).
		Logger()
	if app.Env == "development" {
		zl = zl.With().Caller().Logger()
	}
	log.Logger = zl
	return zl
}

func writer(out io.Writer, env string, cfg config.LogConfig) io.Writer {
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	if cfg.FilePath == "" {
		return out
	}
	return zerolog.MultiLevelWriter(out, &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
		Compress:   true,
	})
}

// ParseLevel traduce LOG_LEVEL; valores desconocidos caen en info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
