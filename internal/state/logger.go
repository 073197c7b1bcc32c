package state

import "github.com/golang/glog"

// Logger receives diagnostics for projections that fail during a
// notification.
type Logger interface {
	Errorf(format string, args ...any)
}

type glogLogger struct{}

func (glogLogger) Errorf(format string, args ...any) {
	glog.Errorf(format, args...)
}
