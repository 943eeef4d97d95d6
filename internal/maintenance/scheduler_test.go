package maintenance

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeCheckpointer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeCheckpointer) Checkpoint(ctx context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestSchedulerStartEmptySchedule(t *testing.T) {
	s := NewScheduler(&fakeCheckpointer{}, time.Second)

	started, err := s.Start("")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if started {
		t.Fatal("expected empty schedule to leave scheduler stopped")
	}
	if s.Status().Running {
		t.Fatal("expected status to report not running")
	}
}

func TestSchedulerStartInvalidSchedule(t *testing.T) {
	s := NewScheduler(&fakeCheckpointer{}, time.Second)

	if _, err := s.Start("every other tuesday"); err == nil {
		t.Fatal("expected invalid schedule to fail")
	}
}

func TestSchedulerStatusReportsNextRun(t *testing.T) {
	s := NewScheduler(&fakeCheckpointer{}, time.Second)

	started, err := s.Start("@every 1h")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if !started {
		t.Fatal("expected scheduler to start")
	}
	defer s.Stop()

	status := s.Status()
	if !status.Running || status.Schedule != "@every 1h" {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.NextCheckpoint == nil {
		t.Fatal("expected next checkpoint time")
	}
}

func TestSchedulerRunNowRecordsOutcome(t *testing.T) {
	store := &fakeCheckpointer{}
	s := NewScheduler(store, time.Second)

	if err := s.RunNow(context.Background()); err != nil {
		t.Fatalf("RunNow returned error: %v", err)
	}
	if store.calls.Load() != 1 {
		t.Fatalf("expected 1 checkpoint call, got %d", store.calls.Load())
	}
	if s.Status().LastCheckpoint == nil {
		t.Fatal("expected last checkpoint to be recorded")
	}

	store.err = errors.New("disk full")
	if err := s.RunNow(context.Background()); err == nil {
		t.Fatal("expected error to propagate")
	}
	if s.Status().LastError != "disk full" {
		t.Fatalf("expected last error to be recorded, got %q", s.Status().LastError)
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewScheduler(&fakeCheckpointer{}, time.Second)
	s.Stop()

	if _, err := s.Start("@every 1h"); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	s.Stop()
	s.Stop()

	if s.Status().Running {
		t.Fatal("expected scheduler to be stopped")
	}
}
