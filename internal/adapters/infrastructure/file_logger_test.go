package infrastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"forecastdash.app/internal/ports"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testClock = fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	tests := []struct {
		name        string
		logPath     func(dir string) string
		expectError bool
		errorMsg    string
	}{
		{"valid_path", func(dir string) string { return filepath.Join(dir, "forecast.log") }, false, ""},
		{"nested_path", func(dir string) string { return filepath.Join(dir, "nested", "deep", "forecast.log") }, false, ""},
		{"empty_path", func(dir string) string { return "" }, true, "log file path cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := tt.logPath(t.TempDir())

			logger, err := NewFileLoggerAdapter(logPath, "info", testClock)

			if tt.expectError {
				assert.Nil(t, logger)
				assert.ErrorContains(t, err, tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.DirExists(t, filepath.Dir(logPath))
			assert.NoError(t, logger.Close())
		})
	}

	_, err := NewFileLoggerAdapter(filepath.Join(t.TempDir(), "x.log"), "info", nil)
	assert.ErrorContains(t, err, "clock is required")
}

func TestFileLoggerAdapter_StructuredLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "forecast.log")
	logger, err := NewFileLoggerAdapter(logPath, "debug", testClock)
	require.NoError(t, err)

	logger.Info("Forecast API request completed",
		ports.F("city", "Moscow"),
		ports.F("days", 5),
		ports.F("error", fmt.Errorf("boom")))
	logger.Debug("Location lookup started")
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Forecast API request completed", entries[0]["message"])
	assert.Equal(t, "2024-06-01T12:00:00Z", entries[0]["timestamp"])
	assert.Equal(t, "Moscow", entries[0]["city"])
	assert.Equal(t, float64(5), entries[0]["days"])
	assert.Equal(t, "boom", entries[0]["error"])
	assert.Equal(t, "DEBUG", entries[1]["level"])
}

func TestFileLoggerAdapter_LevelFilter(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "forecast.log")
	logger, err := NewFileLoggerAdapter(logPath, "warn", testClock)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "ERROR", entries[1]["level"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "forecast.log")
	logger, err := NewFileLoggerAdapter(logPath, "info", testClock)
	require.NoError(t, err)

	const goroutines = 10
	const perGoroutine = 20

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Info("concurrent", ports.F("goroutine", id), ports.F("i", i))
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readLogLines(t, logPath), goroutines*perGoroutine)
}

func TestFileLoggerAdapter_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "forecast.log")

	first, err := NewFileLoggerAdapter(logPath, "info", testClock)
	require.NoError(t, err)
	first.Info("first")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(logPath, "info", testClock)
	require.NoError(t, err)
	second.Info("second")
	require.NoError(t, second.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, "second", entries[1]["message"])
}

func TestFileLoggerAdapter_InvalidJSONHandling(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "forecast.log")
	logger, err := NewFileLoggerAdapter(logPath, "info", testClock)
	require.NoError(t, err)

	logger.Info("unmarshalable", ports.F("ch", make(chan int)))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Contains(t, entries[0]["message"], "failed to marshal log entry")
}

func TestFileLoggerAdapter_WriteAfterClose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "forecast.log")
	logger, err := NewFileLoggerAdapter(logPath, "info", testClock)
	require.NoError(t, err)
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	logger.Info("ignored")
	assert.Empty(t, readLogLines(t, logPath))
}
