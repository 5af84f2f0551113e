package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/bookconnect/internal/browse"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "bookconnect-debug.log"

// Global debug logger instance
var (
	debugLog  = zap.NewNop()
	debugFile *os.File
)

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// The log file is truncated on every start.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = zap.NewNop()
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	debugFile = f
	debugLog = zap.New(core).Named("tui")
	debugLog.Debug("debug start", zap.String("log_file", DebugLogPath))
	return nil
}

// CloseDebugLogger flushes and closes the debug log file.
func CloseDebugLogger() {
	debugLog.Debug("debug end")
	_ = debugLog.Sync()
	if debugFile != nil {
		_ = debugFile.Close()
		debugFile = nil
	}
	debugLog = zap.NewNop()
}

// DebugLogger returns the active debug logger. It is a no-op logger unless
// debug mode is on.
func DebugLogger() *zap.Logger {
	return debugLog
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("key press", zap.String("key", msg.String()))
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if from == to {
		return
	}
	debugLog.Debug("mode change",
		zap.String("from", modeString(from)),
		zap.String("to", modeString(to)),
		zap.String("reason", reason),
	)
}

// LogCursorMove logs cursor movement.
func LogCursorMove(row int, reason string) {
	debugLog.Debug("cursor move", zap.Int("row", row), zap.String("reason", reason))
}

// LogOverlay logs which overlay receives input.
func LogOverlay(slot browse.Slot) {
	debugLog.Debug("overlay on top", zap.String("slot", string(slot)))
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.Debug("error", zap.String("context", context), zap.Error(err))
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}
