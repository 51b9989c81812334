// Package logging holds the daemon's slog helpers. The connection
// library itself never logs; everything here belongs to the daemon.
package logging

import (
	"log/slog"
	"os"
	"runtime/debug"
)

// NewProgramAttr describes the running process for every log line.
func NewProgramAttr() slog.Attr {
	buildInfo, _ := debug.ReadBuildInfo()
	hostname, _ := os.Hostname()

	return slog.Group("program",
		slog.Int("pid", os.Getpid()),
		slog.String("machine", hostname),
		slog.String("version", buildInfo.Main.Version),
	)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
