package log

import (
	"bytes"
	"dishrank-menu/structs"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerInit_Level(t *testing.T) {
	var buf bytes.Buffer
	logService := LogService{Config: structs.Log{Level: "warn"}, Out: &buf}
	logger := logService.LoggerInit("menu")

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerInit_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logService := LogService{Config: structs.Log{Level: "loud"}, Out: &buf}
	logger := logService.LoggerInit("menu")

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), `unknown log level \"loud\"`)
}

func TestLoggerInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logService := LogService{Config: structs.Log{Level: "info", Format: "json"}, Out: &buf}
	logger := logService.LoggerInit("menu")
	logger.WithFields(logrus.Fields{"task": "menu", "kind": "dessert"}).Info("rendered")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rendered", entry["msg"])
	assert.Equal(t, "dessert", entry["kind"])
	assert.Equal(t, "info", entry["level"])
}

func TestLoggerInit_File(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logService := LogService{
		Config: structs.Log{Level: "info", FileEnable: 1, FileDir: dir},
		Out:    &buf,
	}
	logger := logService.LoggerInit("tracker")
	logger.Info("to both outputs")

	fileName := filepath.Join(dir, time.Now().Format("2006-01-02"), "tracker.log")
	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "to both outputs")
	assert.Contains(t, buf.String(), "to both outputs")
}

func TestLoggerInit_Logstash(t *testing.T) {
	var buf bytes.Buffer
	logService := LogService{
		Config: structs.Log{Level: "info", LogstashEnable: 1, LogstashURL: "127.0.0.1:5959", LogstashIndex: "menu"},
		Out:    &buf,
	}
	logger := logService.LoggerInit("menu")

	// udp dial needs no listener
	assert.NotEmpty(t, logger.Hooks[logrus.InfoLevel])
}

func TestLoggerInit_NoHooksByDefault(t *testing.T) {
	logService := LogService{Config: structs.Log{Level: "debug"}, Out: &bytes.Buffer{}}
	logger := logService.LoggerInit("menu")

	for _, hooks := range logger.Hooks {
		assert.Empty(t, hooks)
	}
}

func TestLogService_Close(t *testing.T) {
	dir := t.TempDir()
	logService := LogService{
		Config: structs.Log{Level: "info", FileEnable: 1, FileDir: dir, LogstashEnable: 1, LogstashURL: "127.0.0.1:5959"},
		Out:    &bytes.Buffer{},
	}
	logger := logService.LoggerInit("menu")
	logger.Info("before close")
	require.Len(t, logService.closers, 2)

	require.NoError(t, logService.Close())
	assert.Empty(t, logService.closers)
	assert.NoError(t, logService.Close())

	fileName := filepath.Join(dir, time.Now().Format("2006-01-02"), "menu.log")
	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "before close")
}

func TestLogService_Close_NothingOpened(t *testing.T) {
	logService := LogService{Config: structs.Log{Level: "info"}, Out: &bytes.Buffer{}}
	logService.LoggerInit("menu")
	assert.NoError(t, logService.Close())
}
