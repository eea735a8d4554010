package scheduler

import (
	"sort"
	"sync"
	"time"
)

// FakeTimers は手で進めるタイマー（テスト用）。
type FakeTimers struct {
	mu      sync.Mutex
	now     time.Time
	pending []*fakeTimer
}

type fakeTimer struct {
	owner   *FakeTimers
	due     time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func NewFakeTimers(start time.Time) *FakeTimers {
	return &FakeTimers{now: start}
}

func (f *FakeTimers) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTimer{owner: f, due: f.now.Add(d), fn: fn}
	f.pending = append(f.pending, t)
	return t
}

func (f *FakeTimers) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance は時間を進め、期限が来たタイマーを予定時刻順に同期実行する。
func (f *FakeTimers) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)

	var due []*fakeTimer
	rest := f.pending[:0]
	for _, t := range f.pending {
		switch {
		case t.stopped:
		case !t.due.After(f.now):
			t.fired = true
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	f.pending = rest
	f.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	for _, t := range due {
		t.fn()
	}
}

// Options は Scheduler に渡す
func (f *FakeTimers) Options() []Option {
	return []Option{WithAfterFunc(f.AfterFunc), WithClock(f.Now)}
}
