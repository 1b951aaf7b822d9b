package trackLog

import (
	"dishrank-menu/services/log"

	"github.com/sirupsen/logrus"
)

var logTracker *logrus.Entry

// LogTrackInit sets up the process tracker. Before it runs, messages go to the
// logrus standard logger.
func LogTrackInit(logService *log.LogService) {
	SetTracker(logService.LoggerInit("tracker").WithFields(logrus.Fields{"task": "track"}))
}

func SetTracker(entry *logrus.Entry) {
	logTracker = entry
}

func Tracker() *logrus.Entry {
	if logTracker == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logTracker
}

// Info logs at info level, or at debug level when needWriteLog is false.
func Info(message string, needWriteLog bool) {
	if needWriteLog {
		Tracker().Info(message)
		return
	}
	Tracker().Debug(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog {
		Tracker().Error(message)
		return
	}
	Tracker().Warn(message)
}
