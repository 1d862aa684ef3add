package panel

import (
	"go.uber.org/zap"

	"github.com/t0mer/pi-fm-radio/internal/logging"
	"github.com/t0mer/pi-fm-radio/internal/tuner"
)

// Reporter receives failures observed by the refresh loop and command
// dispatch. A failed poll or command is reported here and then dropped;
// the panel itself shows no error banner and simply keeps displaying the
// last rendered state until a later refresh succeeds.
type Reporter interface {
	ReportError(op string, err error)
}

// LogReporter writes observed failures to the structured log.
type LogReporter struct{}

// ReportError implements Reporter.
func (LogReporter) ReportError(op string, err error) {
	logging.Error("tuner operation failed",
		zap.String("op", op),
		zap.Error(err),
		zap.Int("http_status", tuner.HTTPStatus(err)),
		zap.Bool("timeout", tuner.IsTimeout(err)),
		zap.Bool("connection_refused", tuner.IsConnectionRefused(err)),
	)
}
