// Package logging sets up the named zap loggers used throughout
// scatterplot.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the log level used in configuration.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "INFO"
}

// ParseLevel parses a level name, case insensitive.
func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == s {
			return l, nil
		}
	}
	return LevelInfo, errors.Errorf("unknown log level %q", s)
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	}
	return zap.InfoLevel
}

// Module names.
const (
	ModuleData    = "[Data]"
	ModulePlot    = "[Plot]"
	ModuleDisplay = "[Display]"
	ModuleCLI     = "[CLI]"
)

// Config controls where and how much is logged.
type Config struct {
	Level Level

	// Path is the base name of an optional rotated log file. Empty
	// disables file logging.
	Path           string
	RotationMaxAge int // days
	RotationTime   int // hours

	ShowLine bool

	// Console receives log output in addition to Path. Nil means no
	// console output.
	Console io.Writer
}

// DefaultConfig logs INFO and above to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:          LevelInfo,
		RotationMaxAge: 7,
		RotationTime:   24,
		Console:        os.Stderr,
	}
}

// newWriteSyncer opens the outputs configured in c. rotatelogs only opens
// its file on the first write, so the log directory is checked here and
// an unusable Path is reported before anything is logged. A nil syncer
// means c logs nowhere.
func newWriteSyncer(c *Config) (zapcore.WriteSyncer, error) {
	var syncers []zapcore.WriteSyncer
	if c.Console != nil {
		syncers = append(syncers, zapcore.AddSync(c.Console))
	}
	if c.Path != "" {
		if err := checkWritable(filepath.Dir(c.Path)); err != nil {
			return nil, errors.Wrapf(err, "cannot log to %s", c.Path)
		}
		w, err := rotatelogs.New(
			c.Path+".%Y%m%d%H",
			rotatelogs.WithRotationTime(time.Duration(c.RotationTime)*time.Hour),
			rotatelogs.WithMaxAge(24*time.Hour*time.Duration(c.RotationMaxAge)),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot rotate log file %s", c.Path)
		}
		syncers = append(syncers, zapcore.AddSync(w))
	}
	if len(syncers) == 0 {
		return nil, nil
	}
	return zapcore.NewMultiWriteSyncer(syncers...), nil
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".scatterplot-*")
	if err != nil {
		return err
	}
	f.Close()
	return os.Remove(f.Name())
}

// NewSugaredLogger builds a logger called name according to c with its
// own outputs.
func NewSugaredLogger(name string, c *Config) (*zap.SugaredLogger, error) {
	ws, err := newWriteSyncer(c)
	if err != nil {
		return nil, err
	}
	return newLogger(name, c, ws), nil
}

func newLogger(name string, c *Config, ws zapcore.WriteSyncer) *zap.SugaredLogger {
	if ws == nil {
		return zap.NewNop().Sugar()
	}
	minLevel := c.Level.zap()
	enabled := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel
	})

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "line",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + level.CapitalString() + "]")
		},
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, enabled)

	// Failed writes are reported on stderr.
	opts := []zap.Option{zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if c.ShowLine {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(name).Sugar()
}

var (
	loggers   = make(map[string]*zap.SugaredLogger)
	loggersMu sync.Mutex
	config    = DefaultConfig()
	syncer    = zapcore.AddSync(config.Console)
)

// SetConfig replaces the configuration used by Get. All module loggers
// share the outputs opened here; loggers handed out earlier are rebuilt
// on their next Get.
func SetConfig(c *Config) error {
	ws, err := newWriteSyncer(c)
	if err != nil {
		return err
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	config, syncer = c, ws
	for name := range loggers {
		delete(loggers, name)
	}
	return nil
}

// Get returns the logger for module name.
func Get(name string) *zap.SugaredLogger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := newLogger(name, config, syncer)
	loggers[name] = l
	return l
}
