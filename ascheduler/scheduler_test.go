package ascheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	gocron "github.com/go-co-op/gocron/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jpfluger/dateoffsets/aoffsets"
)

// TestSCHEDULER tests the SCHEDULER function.
func TestSCHEDULER(t *testing.T) {
	scheduler := SCHEDULER()
	assert.NotNil(t, scheduler)
}

// TestSetScheduler tests the SetScheduler function.
func TestSetScheduler(t *testing.T) {
	scheduler, _ := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	err := SetScheduler(scheduler, false)
	assert.NoError(t, err)
	assert.Equal(t, scheduler, globalCron)
}

// countingTask records how many times it ran and signals ran on a channel
// after each run so tests can wait without polling GetExecuted in a loop.
type countingTask struct {
	mu    sync.Mutex
	count int
	ran   chan struct{}
}

func newCountingTask() *countingTask {
	return &countingTask{ran: make(chan struct{}, 8)}
}

func (c *countingTask) Task(ctx context.Context) error {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	c.ran <- struct{}{}
	return nil
}

func (c *countingTask) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func mustSec(t *testing.T, n int) aoffsets.Tick {
	return aoffsets.NewSecond(n)
}

// TestScheduleOffsetJobFiresAndReschedules runs a job offset by a 1-second
// tick twice, confirming the job reschedules itself after each run rather
// than firing only once.
func TestScheduleOffsetJobFiresAndReschedules(t *testing.T) {
	assert.NoError(t, SetScheduler(nil, true))

	task := newCountingTask()
	offset := mustSec(t, 1)

	job, err := ScheduleOffsetJob("test-reschedule", offset, time.Now().UTC(), task.Task)
	assert.NoError(t, err)
	assert.Equal(t, "test-reschedule", job.Name())

	SCHEDULER().Start()
	defer func() {
		assert.NoError(t, SCHEDULER().StopJobs())
	}()

	timeout := time.After(5 * time.Second)
	for i := 0; i < 2; i++ {
		select {
		case <-task.ran:
		case <-timeout:
			t.Fatal("offset job did not fire the expected number of times within the deadline")
		}
	}
	assert.GreaterOrEqual(t, task.Count(), 2)
}

// TestOffsetJobStopPreventsReschedule confirms Stop halts further firings.
func TestOffsetJobStopPreventsReschedule(t *testing.T) {
	assert.NoError(t, SetScheduler(nil, true))

	task := newCountingTask()
	offset := mustSec(t, 1)

	job, err := ScheduleOffsetJob("test-stop", offset, time.Now().UTC(), task.Task)
	assert.NoError(t, err)

	SCHEDULER().Start()
	defer func() {
		assert.NoError(t, SCHEDULER().StopJobs())
	}()

	select {
	case <-task.ran:
	case <-time.After(5 * time.Second):
		t.Fatal("offset job never fired")
	}

	assert.NoError(t, job.Stop())

	countAfterStop := task.Count()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, countAfterStop, task.Count(), "job should not fire again after Stop")
}

// TestScheduleOffsetJobWithHeartbeatRejectsBadSpec confirms a malformed
// cron expression fails fast without arming either job.
func TestScheduleOffsetJobWithHeartbeatRejectsBadSpec(t *testing.T) {
	assert.NoError(t, SetScheduler(nil, true))

	task := newCountingTask()
	offset := mustSec(t, 1)

	_, err := ScheduleOffsetJobWithHeartbeat("test-bad-heartbeat", offset, time.Now().UTC(), task.Task, "not a cron spec", task.Task)
	assert.Error(t, err)
	assert.Empty(t, SCHEDULER().Jobs())
}

// TestScheduleOffsetJobWithHeartbeatRegistersBothJobs confirms a valid
// heartbeat spec arms both the offset job and the cron heartbeat.
func TestScheduleOffsetJobWithHeartbeatRegistersBothJobs(t *testing.T) {
	assert.NoError(t, SetScheduler(nil, true))

	offsetTask := newCountingTask()
	heartbeatTask := newCountingTask()
	offset := mustSec(t, 1)

	job, err := ScheduleOffsetJobWithHeartbeat("test-heartbeat", offset, time.Now().UTC(), offsetTask.Task, "0 0 1 1 *", heartbeatTask.Task)
	assert.NoError(t, err)
	assert.NotNil(t, job)
	assert.Len(t, SCHEDULER().Jobs(), 2)

	assert.NoError(t, job.Stop())
	assert.Empty(t, SCHEDULER().Jobs())
}
