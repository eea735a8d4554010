// Package scheduler はキー付きの一回きりタイマーです。
// 同じキーで登録し直すと前のタスクは取り消されます（後勝ち）。
package scheduler

import (
	"sync"
	"time"
)

// Timer は time.Timer の Stop だけを使う
type Timer interface {
	Stop() bool
}

// AfterFunc は time.AfterFunc と同じ形（テストで差し替える）
type AfterFunc func(d time.Duration, f func()) Timer

type Option func(*Scheduler)

func WithAfterFunc(af AfterFunc) Option {
	return func(s *Scheduler) { s.afterFunc = af }
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

type task struct {
	seq   uint64
	timer Timer
	due   time.Time
}

type Scheduler struct {
	mu        sync.Mutex
	tasks     map[string]*task
	seq       uint64
	stopped   bool
	afterFunc AfterFunc
	now       func() time.Time
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		tasks: map[string]*task{},
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule はdelay後にfnを1回呼ぶ。同じキーの未実行タスクは取り消す。
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if prev, ok := s.tasks[key]; ok {
		prev.timer.Stop()
		delete(s.tasks, key)
	}

	s.seq++
	seq := s.seq
	t := &task{seq: seq, due: s.now().Add(delay)}
	s.tasks[key] = t

	t.timer = s.afterFunc(delay, func() {
		s.mu.Lock()
		cur, ok := s.tasks[key]
		if !ok || cur.seq != seq {
			// 取り消し済み、または置き換え済み
			s.mu.Unlock()
			return
		}
		delete(s.tasks, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel は未実行のタスクを取り消す。取り消せたら true。
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Pending は未実行タスクの予定時刻
func (s *Scheduler) Pending(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return time.Time{}, false
	}
	return t.due, true
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop は全タスクを取り消し、以後の登録を無視する。
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, key)
	}
	s.stopped = true
}
