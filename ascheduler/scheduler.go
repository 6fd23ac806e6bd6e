package ascheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocron "github.com/go-co-op/gocron/v2"
	cron "github.com/robfig/cron/v3"

	"github.com/jpfluger/dateoffsets/alog"
	"github.com/jpfluger/dateoffsets/aoffsets"
)

// globalCron is a globally accessible gocron.Scheduler instance.
var (
	globalCron gocron.Scheduler
	once       sync.Once
	mutex      sync.Mutex
)

// SCHEDULER returns the global gocron.Scheduler instance, initializing it
// with UTC location on first use.
func SCHEDULER() gocron.Scheduler {
	once.Do(func() {
		globalCron, _ = gocron.NewScheduler(gocron.WithLocation(time.UTC))
	})
	return globalCron
}

// SetScheduler safely replaces the global scheduler instance. Passing nil
// creates a fresh UTC scheduler.
func SetScheduler(scheduler gocron.Scheduler, doReinitWithShutdown bool) error {
	mutex.Lock()
	defer mutex.Unlock()

	if doReinitWithShutdown {
		if err := SCHEDULER().Shutdown(); err != nil {
			return fmt.Errorf("failed shutdown scheduler: %w", err)
		}
	}
	if scheduler == nil {
		scheduler, _ = gocron.NewScheduler(gocron.WithLocation(time.UTC))
	}
	globalCron = scheduler
	return nil
}

// OffsetTask is the work a scheduled offset job performs on each firing.
type OffsetTask func(ctx context.Context) error

// offsetJob tracks the live state of a job whose recurrence is driven by
// an aoffsets.Offset rather than a fixed interval or cron expression: the
// next firing time is always offset.Apply(lastFiring), so firings land on
// exactly the dates the offset's algebra visits (the last business day of
// the month, every other BusinessDay, a fiscal quarter-end, and so on).
type offsetJob struct {
	name   string
	offset aoffsets.Offset
	task   OffsetTask

	mu      sync.Mutex
	gocron  gocron.Job
	stopped bool
}

// ScheduleOffsetJob registers a job named name whose first firing is
// offset.Apply(from) and whose every subsequent firing is offset.Apply of
// the previous firing. The job reschedules itself after every run, so it
// keeps firing indefinitely until Stop is called.
func ScheduleOffsetJob(name string, offset aoffsets.Offset, from time.Time, task OffsetTask) (*offsetJob, error) {
	first, err := offset.Apply(from)
	if err != nil {
		return nil, fmt.Errorf("ascheduler: computing first firing for %q: %w", name, err)
	}

	oj := &offsetJob{name: name, offset: offset, task: task}
	if err := oj.scheduleAt(first); err != nil {
		return nil, err
	}
	return oj, nil
}

func (oj *offsetJob) scheduleAt(at time.Time) error {
	job, err := SCHEDULER().NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(oj.run),
		gocron.WithName(oj.name),
	)
	if err != nil {
		return fmt.Errorf("ascheduler: scheduling %q at %s: %w", oj.name, at, err)
	}
	oj.mu.Lock()
	oj.gocron = job
	oj.mu.Unlock()
	return nil
}

// run executes the task, then reschedules the job at offset.Apply(now
// firing) unless Stop has been called in the meantime.
func (oj *offsetJob) run() {
	logger := alog.LOGGER(alog.LOGGER_SCHEDULER)

	oj.mu.Lock()
	lastFiring := oj.lastFiringLocked()
	oj.mu.Unlock()

	if err := oj.task(context.Background()); err != nil {
		logger.Error().Err(err).Str("job", oj.name).Msg("offset job run failed")
	}

	oj.mu.Lock()
	stopped := oj.stopped
	oj.mu.Unlock()
	if stopped {
		return
	}

	next, err := oj.offset.Apply(lastFiring)
	if err != nil {
		logger.Error().Err(err).Str("job", oj.name).Msg("offset job failed to compute next firing; not rescheduled")
		return
	}
	if err := oj.scheduleAt(next); err != nil {
		logger.Error().Err(err).Str("job", oj.name).Msg("offset job failed to reschedule")
	}
}

func (oj *offsetJob) lastFiringLocked() time.Time {
	if oj.gocron == nil {
		return time.Now().UTC()
	}
	next, err := oj.gocron.NextRun()
	if err != nil || next.IsZero() {
		return time.Now().UTC()
	}
	return next
}

// Stop prevents the job from rescheduling after its current run finishes,
// and removes its pending gocron entry.
func (oj *offsetJob) Stop() error {
	oj.mu.Lock()
	oj.stopped = true
	job := oj.gocron
	oj.mu.Unlock()

	if job == nil {
		return nil
	}
	return SCHEDULER().RemoveJob(job.ID())
}

// Name returns the job's registered name.
func (oj *offsetJob) Name() string { return oj.name }

// HeartbeatJob pairs an offset-driven job with a plain cron safety-net
// tick, so a consumer can confirm the process is still alive between
// offset firings that may be weeks or months apart.
type HeartbeatJob struct {
	Offset    *offsetJob
	heartbeat gocron.Job
}

// Stop halts both the offset job and the heartbeat tick.
func (h *HeartbeatJob) Stop() error {
	if err := h.Offset.Stop(); err != nil {
		return err
	}
	if h.heartbeat == nil {
		return nil
	}
	return SCHEDULER().RemoveJob(h.heartbeat.ID())
}

// ScheduleOffsetJobWithHeartbeat is ScheduleOffsetJob plus a standard
// five-field cron expression (e.g. "0 * * * *" for hourly) that fires
// heartbeatTask as a recurring safety-net check-in, independent of how
// far apart the offset's own firings land. heartbeatSpec is validated
// with robfig/cron's standard parser before either job is armed, so a
// malformed expression fails the call instead of silently never firing.
func ScheduleOffsetJobWithHeartbeat(name string, offset aoffsets.Offset, from time.Time, task OffsetTask, heartbeatSpec string, heartbeatTask OffsetTask) (*HeartbeatJob, error) {
	if _, err := cron.ParseStandard(heartbeatSpec); err != nil {
		return nil, fmt.Errorf("ascheduler: invalid heartbeat spec %q for %q: %w", heartbeatSpec, name, err)
	}

	oj, err := ScheduleOffsetJob(name, offset, from, task)
	if err != nil {
		return nil, err
	}

	hb, err := SCHEDULER().NewJob(
		gocron.CronJob(heartbeatSpec, false),
		gocron.NewTask(func() {
			logger := alog.LOGGER(alog.LOGGER_SCHEDULER)
			if err := heartbeatTask(context.Background()); err != nil {
				logger.Error().Err(err).Str("job", name+"-heartbeat").Msg("heartbeat run failed")
			}
		}),
		gocron.WithName(name+"-heartbeat"),
	)
	if err != nil {
		_ = oj.Stop()
		return nil, fmt.Errorf("ascheduler: scheduling heartbeat for %q: %w", name, err)
	}

	return &HeartbeatJob{Offset: oj, heartbeat: hb}, nil
}
