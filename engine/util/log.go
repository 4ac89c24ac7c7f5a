package util

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogSystem
	LogIO
	LogGame
)

const LogAllCategories = LogVoxel | LogSystem | LogIO | LogGame

var categoryNames = map[string]LogCategory{
	"voxel":  LogVoxel,
	"system": LogSystem,
	"io":     LogIO,
	"game":   LogGame,
}

var (
	logger        = zap.NewNop()
	logCategories = LogAllCategories
)

// LogFileConfig holds file logging configuration.
type LogFileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultLogFileConfig returns rotation settings for a log file at path.
func DefaultLogFileConfig(path string) LogFileConfig {
	return LogFileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// InitLogging replaces the no-op logger with a console logger and, if logFile is set,
// a rotating file logger.
func InitLogging(level string, logFile string) error {
	if logFile != "" {
		return InitLoggingWithFile(level, DefaultLogFileConfig(logFile), true)
	}
	return InitLoggingWithFile(level, LogFileConfig{}, true)
}

// InitLoggingWithFile is InitLogging with explicit rotation settings.
// consoleOutput=false is useful in tests.
func InitLoggingWithFile(level string, fileCfg LogFileConfig, consoleOutput bool) error {
	lvl := ParseLogLevel(level)

	var cores []zapcore.Core

	if consoleOutput {
		levelEncoder := zapcore.CapitalLevelEncoder
		if term.IsTerminal(int(os.Stdout.Fd())) {
			levelEncoder = zapcore.CapitalColorLevelEncoder
		}
		consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      levelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), lvl))
	}

	if fileCfg.Path != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
			LocalTime:  true,
		}
		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), lvl))
	}

	logger = zap.New(zapcore.NewTee(cores...))
	return nil
}

// ParseLogLevel maps debug/info/warn/error to a zap level; anything else is info.
func ParseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func ParseLogCategory(name string) (LogCategory, bool) {
	cat, ok := categoryNames[strings.ToLower(name)]
	return cat, ok
}

// SetLogCategories restricts output to the given category mask.
func SetLogCategories(categories LogCategory) {
	logCategories = categories
}

func SyncLogging() {
	_ = logger.Sync()
}

func log(cat LogCategory, lvl zapcore.Level, txt string, fields ...zap.Field) {
	if logCategories&cat == 0 {
		return
	}
	if ce := logger.Check(lvl, txt); ce != nil {
		ce.Write(fields...)
	}
}

func LogVoxelInfo(txt string, fields ...zap.Field) {
	log(LogVoxel, zapcore.InfoLevel, txt, fields...)
}

func LogVoxelDebug(txt string, fields ...zap.Field) {
	log(LogVoxel, zapcore.DebugLevel, txt, fields...)
}

func LogVoxelError(txt string, fields ...zap.Field) {
	log(LogVoxel, zapcore.ErrorLevel, txt, fields...)
}

func LogSystemInfo(txt string, fields ...zap.Field) {
	log(LogSystem, zapcore.InfoLevel, txt, fields...)
}

func LogSystemError(txt string, fields ...zap.Field) {
	log(LogSystem, zapcore.ErrorLevel, txt, fields...)
}

func LogIOInfo(txt string, fields ...zap.Field) {
	log(LogIO, zapcore.InfoLevel, txt, fields...)
}

func LogIOError(txt string, fields ...zap.Field) {
	log(LogIO, zapcore.ErrorLevel, txt, fields...)
}

func LogGameInfo(txt string, fields ...zap.Field) {
	log(LogGame, zapcore.InfoLevel, txt, fields...)
}

func LogGameWarning(txt string, fields ...zap.Field) {
	log(LogGame, zapcore.WarnLevel, txt, fields...)
}
