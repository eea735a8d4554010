package usecase

import (
	"sync"
	"time"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/scheduler"
)

// Notifier はトーストを出す約束（cart/guard/loginから使う）
type Notifier interface {
	Show(profileID string, message string, severity model.Severity) model.Toast
}

// ToastUsecase はプロフィールごとに1枠のトースト。
// 新しいトーストは前のものを置き換え、ttl後に自動で消える。
type ToastUsecase struct {
	sched *scheduler.Scheduler
	ttl   time.Duration
	now   func() time.Time

	mu    sync.Mutex
	gen   uint64
	slots map[string]toastSlot
}

// gen は消去タイマーが自分の出したトーストだけを消すための印
type toastSlot struct {
	toast model.Toast
	gen   uint64
}

func NewToastUsecase(sched *scheduler.Scheduler, ttl time.Duration, now func() time.Time) *ToastUsecase {
	if now == nil {
		now = time.Now
	}
	return &ToastUsecase{
		sched: sched,
		ttl:   ttl,
		now:   now,
		slots: map[string]toastSlot{},
	}
}

func toastKey(profileID string) string {
	return "toast:" + profileID
}

func (u *ToastUsecase) Show(profileID string, message string, severity model.Severity) model.Toast {
	t := model.Toast{Message: message, Severity: severity, ShownAt: u.now()}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.gen++
	gen := u.gen
	u.slots[profileID] = toastSlot{toast: t, gen: gen}

	// 前の消去タイマーは Schedule が取り消す
	u.sched.Schedule(toastKey(profileID), u.ttl, func() {
		u.expire(profileID, gen)
	})
	return t
}

// 後から出たトーストは消さない
func (u *ToastUsecase) expire(profileID string, gen uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if cur, ok := u.slots[profileID]; ok && cur.gen == gen {
		delete(u.slots, profileID)
	}
}

// Current は表示中のトースト
func (u *ToastUsecase) Current(profileID string) (model.Toast, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cur, ok := u.slots[profileID]
	return cur.toast, ok
}

func (u *ToastUsecase) Dismiss(profileID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.sched.Cancel(toastKey(profileID))
	delete(u.slots, profileID)
}

var _ Notifier = (*ToastUsecase)(nil)
