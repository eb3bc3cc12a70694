package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls GUI debug logging. The default LevelInfo suppresses
// Debug messages; SetVerbose(true) lowers it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is shared by the context and widgets.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}
