package impl

import (
	"io"
	"log/slog"
)

// testLogger returns a logger that discards everything. Services log on
// their hot paths; tests only care about behavior.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
