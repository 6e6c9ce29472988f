package external

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	mocks "forecastdash.app/internal/mocks"
)

// manualClock is a Clock that only moves when told to
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// allowLogs accepts any log call with up to eight fields
func allowLogs(logger *mocks.Logger) {
	for n := 0; n <= 8; n++ {
		args := make([]interface{}, n)
		for i := range args {
			args[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, args...).Maybe()
		logger.EXPECT().Info(mock.Anything, args...).Maybe()
		logger.EXPECT().Warn(mock.Anything, args...).Maybe()
		logger.EXPECT().Error(mock.Anything, args...).Maybe()
	}
}
