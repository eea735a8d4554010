package usecase

import (
	"sync"
	"time"

	"github.com/GreatJeff90/bookstore/internal/scheduler"
)

// Redirect は予約済みの遅延リダイレクト
type Redirect struct {
	To  string
	Due time.Time
}

// Redirector はguardから使う約束
type Redirector interface {
	ScheduleRedirect(profileID string, to string, after time.Duration) Redirect
	CancelRedirect(profileID string) bool
}

// 発火後に戻ってこないプロフィールの分はこの時間で捨てる
const firedRedirectTTL = 10 * time.Minute

// Navigator はプロフィールごとに1つの遅延リダイレクトを持つ。
// 期限前は Pending（ページに meta refresh で出す）、期限後は Take で次のページ表示時に即リダイレクト。
type Navigator struct {
	sched *scheduler.Scheduler
	now   func() time.Time

	mu      sync.Mutex
	gen     uint64
	pending map[string]pendingRedirect
	fired   map[string]firedRedirect
}

// gen は古いタイマーが新しい予約を動かさないための印
type pendingRedirect struct {
	Redirect
	gen uint64
}

type firedRedirect struct {
	to  string
	gen uint64
}

func NewNavigator(sched *scheduler.Scheduler, now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{
		sched:   sched,
		now:     now,
		pending: map[string]pendingRedirect{},
		fired:   map[string]firedRedirect{},
	}
}

func redirectKey(profileID string) string {
	return "redirect:" + profileID
}

func firedKey(profileID string) string {
	return "redirect-fired:" + profileID
}

// 同じプロフィールの予約は後勝ち
func (n *Navigator) ScheduleRedirect(profileID string, to string, after time.Duration) Redirect {
	r := Redirect{To: to, Due: n.now().Add(after)}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	gen := n.gen
	n.pending[profileID] = pendingRedirect{Redirect: r, gen: gen}
	delete(n.fired, profileID)
	n.sched.Cancel(firedKey(profileID))

	n.sched.Schedule(redirectKey(profileID), after, func() {
		n.fire(profileID, gen)
	})
	return r
}

// fire は予約が置き換わっていなければ発火済みに移す
func (n *Navigator) fire(profileID string, gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	p, ok := n.pending[profileID]
	if !ok || p.gen != gen {
		return
	}
	delete(n.pending, profileID)
	n.fired[profileID] = firedRedirect{to: p.To, gen: gen}

	n.sched.Schedule(firedKey(profileID), firedRedirectTTL, func() {
		n.expireFired(profileID, gen)
	})
}

func (n *Navigator) expireFired(profileID string, gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if f, ok := n.fired[profileID]; ok && f.gen == gen {
		delete(n.fired, profileID)
	}
}

// CancelRedirect は予約も、発火済みで未消費のものも消す
func (n *Navigator) CancelRedirect(profileID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	cancelled := n.sched.Cancel(redirectKey(profileID))
	n.sched.Cancel(firedKey(profileID))

	if _, ok := n.fired[profileID]; ok {
		cancelled = true
	}
	delete(n.pending, profileID)
	delete(n.fired, profileID)
	return cancelled
}

// Pending は期限前の予約と残り時間
func (n *Navigator) Pending(profileID string) (Redirect, time.Duration, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	p, ok := n.pending[profileID]
	if !ok {
		return Redirect{}, 0, false
	}
	remaining := p.Due.Sub(n.now())
	if remaining < 0 {
		remaining = 0
	}
	return p.Redirect, remaining, true
}

// Take は発火済みのリダイレクト先を取り出す（1回だけ）
func (n *Navigator) Take(profileID string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	f, ok := n.fired[profileID]
	if !ok {
		return "", false
	}
	delete(n.fired, profileID)
	n.sched.Cancel(firedKey(profileID))
	return f.to, true
}

var _ Redirector = (*Navigator)(nil)
