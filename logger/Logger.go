package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}

type Logger struct {
	SessionId string

	entry   *logrus.Entry
	rotate  *lumberjack.Logger
	console io.Writer
}

// Properties mirrors logger.properties.
type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
}

func DefaultProperties() Properties {
	return Properties{
		LogFilename: "pong.log",
		MaxSize:     10,
		MaxBackups:  3,
		MaxAge:      28,
		Compress:    false,
		Level:       "Info",
	}
}

// ReadProperties loads <dir>/logger.properties from fs. A missing file yields the defaults.
func ReadProperties(fs afero.Fs, dir string) (Properties, error) {
	def := DefaultProperties()

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", def.LogFilename)
	v.SetDefault("maxSize", def.MaxSize)
	v.SetDefault("maxBackups", def.MaxBackups)
	v.SetDefault("maxAge", def.MaxAge)
	v.SetDefault("compress", def.Compress)
	v.SetDefault("level", def.Level)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Properties{}, fmt.Errorf("read logger properties: %w", err)
		}
	}

	return Properties{
		LogFilename: cast.ToString(v.Get("logFilename")),
		MaxSize:     cast.ToInt(v.Get("maxSize")),
		MaxBackups:  cast.ToInt(v.Get("maxBackups")),
		MaxAge:      cast.ToInt(v.Get("maxAge")),
		Compress:    cast.ToBool(v.Get("compress")),
		Level:       cast.ToString(v.Get("level")),
	}, nil
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Init(p Properties) {
	l.rotate = &lumberjack.Logger{
		Filename:   p.LogFilename,
		MaxSize:    p.MaxSize,
		MaxBackups: p.MaxBackups,
		MaxAge:     p.MaxAge,
		Compress:   p.Compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(l.rotate)
	logrus.SetLevel(parseLevel(p.Level))

	l.SessionId = uuid.New().String()
	l.entry = logrus.WithField("session", l.SessionId)
}

// SetConsole mirrors every message to w. Pass nil while a full-screen UI owns the terminal.
func (l *Logger) SetConsole(w io.Writer) {
	l.console = w
}

func (l *Logger) Close() error {
	if l.rotate == nil {
		return nil
	}
	return l.rotate.Close()
}

func (l *Logger) echo(level, message string) {
	if l.console != nil {
		fmt.Fprintln(l.console, level+":", message)
	}
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.echo("Info", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.echo("Error", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.echo("Debug", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.echo("Warn", message)
}
