package scheduler

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) RefreshCetesRate(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSchedulerRunsJob(t *testing.T) {
	refresher := &countingRefresher{}
	s, err := NewScheduler("* * * * * *", refresher, quietLogger())
	require.NoError(t, err)

	s.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return refresher.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestSchedulerSurvivesFailingJob(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("banxico down")}
	s, err := NewScheduler("* * * * * *", refresher, quietLogger())
	require.NoError(t, err)

	s.refresh(refresher)
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	_, err := NewScheduler("every day", &countingRefresher{}, quietLogger())
	assert.Error(t, err)
}
