package logging

import (
	"strings"

	"github.com/creasty/defaults"
	"go.uber.org/zap/zapcore"
)

// Config represents the logger configuration. Zero-value fields pick up
// the declared defaults when the Config passes through NewLogger.
type Config struct {
	// Director is the directory where the log file is stored.
	Director string `mapstructure:"director" json:"director" yaml:"director" default:"logs"`

	// FileName is the name of the rotating log file inside Director.
	FileName string `mapstructure:"file-name" json:"fileName" yaml:"file-name" default:"imagefit.log"`

	// Level is the minimum log level (debug, info, warn, error, dpanic, panic, fatal).
	Level string `mapstructure:"level" json:"level" yaml:"level" default:"info"`

	// Format is the log format (json or console).
	Format string `mapstructure:"format" json:"format" yaml:"format" default:"json"`

	// EncodeLevel is the level encoder type (LowercaseLevelEncoder, LowercaseColorLevelEncoder, CapitalLevelEncoder, CapitalColorLevelEncoder).
	EncodeLevel string `mapstructure:"encode-level" json:"encodeLevel" yaml:"encode-level" default:"LowercaseLevelEncoder"`

	// Prefix is prepended to the encoded timestamp of each entry.
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`

	// TimeFormat is the timestamp layout (uses Go time format).
	TimeFormat string `mapstructure:"time-format" json:"timeFormat" yaml:"time-format" default:"2006/01/02 - 15:04:05"`

	// MessageKey is the JSON key for the message field.
	MessageKey string `mapstructure:"message-key" json:"messageKey" yaml:"message-key" default:"message"`

	// LevelKey is the JSON key for the level field.
	LevelKey string `mapstructure:"level-key" json:"levelKey" yaml:"level-key" default:"level"`

	// TimeKey is the JSON key for the timestamp field.
	TimeKey string `mapstructure:"time-key" json:"timeKey" yaml:"time-key" default:"time"`

	// NameKey is the JSON key for the logger name field.
	NameKey string `mapstructure:"name-key" json:"nameKey" yaml:"name-key" default:"logger"`

	// CallerKey is the JSON key for the caller field.
	CallerKey string `mapstructure:"caller-key" json:"callerKey" yaml:"caller-key" default:"caller"`

	// StacktraceKey is the JSON key for the stacktrace field.
	StacktraceKey string `mapstructure:"stacktrace-key" json:"stacktraceKey" yaml:"stacktrace-key" default:"stacktrace"`

	// LineEnding is the line ending character(s). Empty means zapcore's default.
	LineEnding string `mapstructure:"line-ending" json:"lineEnding" yaml:"line-ending"`

	// LogInTerminal additionally mirrors entries to stdout.
	LogInTerminal bool `mapstructure:"log-in-terminal" json:"logInTerminal" yaml:"log-in-terminal"`

	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `mapstructure:"max-age" json:"maxAge" yaml:"max-age" default:"7"`

	// MaxSize is the maximum size in megabytes of the log file before it gets rotated.
	MaxSize int `mapstructure:"max-size" json:"maxSize" yaml:"max-size" default:"100"`

	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `mapstructure:"max-backups" json:"maxBackups" yaml:"max-backups" default:"10"`

	// Compress gzips rotated log files.
	Compress bool `mapstructure:"compress" json:"compress" yaml:"compress"`

	// ShowLineNumber adds caller information to log entries.
	ShowLineNumber bool `mapstructure:"show-line-number" json:"showLineNumber" yaml:"show-line-number"`
}

// DefaultConfig returns a Config with every default applied. Bools are not
// covered by default tags so explicit false survives decoding.
func DefaultConfig() Config {
	c := Config{
		LineEnding:     zapcore.DefaultLineEnding,
		Compress:       true,
		ShowLineNumber: true,
	}
	c.applyDefaults()
	return c
}

// TransportLevel converts the string level to zapcore.Level.
func (c Config) TransportLevel() zapcore.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic":
		return zapcore.DPanicLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}

// ZapEncodeLevel returns the zapcore.LevelEncoder based on EncodeLevel.
func (c Config) ZapEncodeLevel() zapcore.LevelEncoder {
	switch c.EncodeLevel {
	case "LowercaseColorLevelEncoder":
		return zapcore.LowercaseColorLevelEncoder
	case "CapitalLevelEncoder":
		return zapcore.CapitalLevelEncoder
	case "CapitalColorLevelEncoder":
		return zapcore.CapitalColorLevelEncoder
	default:
		return zapcore.LowercaseLevelEncoder
	}
}

func (c *Config) applyDefaults() {
	_ = defaults.Set(c)
}
