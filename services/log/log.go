package log

import (
	"dishrank-menu/structs"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"time"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

// LogService builds loggers from the Log section of the environment config.
type LogService struct {
	Config structs.Log
	// Host is reported to Elasticsearch and Logstash.
	Host string
	// Out defaults to os.Stderr.
	Out io.Writer

	closers []io.Closer
}

// LoggerInit returns a logger for name. Configuration problems never fail the caller:
// they are reported on the returned logger and the offending output is skipped.
func (l *LogService) LoggerInit(name string) *logrus.Logger {
	logger := logrus.New()

	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	logger.Out = out

	level, err := logrus.ParseLevel(l.Config.Level)
	if err != nil {
		level = logrus.InfoLevel
		defer logger.Warnf("unknown log level %q, using info", l.Config.Level)
	}
	logger.SetLevel(level)

	if l.Config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if l.Config.FileEnable == 1 {
		if src, err := l.openLogFile(name); err != nil {
			logger.Warn(err.Error())
		} else {
			logger.Out = io.MultiWriter(out, src)
			l.closers = append(l.closers, src)
		}
	}

	host := l.Host
	if host == "" {
		host = "dishrank-menu"
	}

	if l.Config.ElkEnable == 1 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{l.Config.ElkURL},
		})
		if err != nil {
			logger.Debug(err.Error())
		} else {
			hook, err := elogrus.NewAsyncElasticHook(client, host, level, l.Config.ElkIndex)
			if err != nil {
				logger.Debug(err.Error())
			} else {
				logger.Hooks.Add(hook)
			}
		}
	}

	if l.Config.LogstashEnable == 1 {
		conn, err := net.Dial("udp", l.Config.LogstashURL)
		if err != nil {
			logger.Debug(err)
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{
				"type":  host,
				"index": l.Config.LogstashIndex,
			}))
			logger.Hooks.Add(hook)
			l.closers = append(l.closers, conn)
		}
	}

	return logger
}

// openLogFile opens <FileDir>/<date>/<name>.log for appending.
func (l *LogService) openLogFile(name string) (*os.File, error) {
	logFilePath := path.Join(l.Config.FileDir, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(logFilePath, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := path.Join(logFilePath, name+".log")
	src, err := os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return src, nil
}

// Close releases the log files and Logstash connections opened by LoggerInit.
// Loggers built by l must not be used afterwards. Calling Close again is a no-op.
func (l *LogService) Close() error {
	var errs []error
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.closers = nil
	return errors.Join(errs...)
}
