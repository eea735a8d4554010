package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_PendingThenFired(t *testing.T) {
	sched, ft := newTestScheduler()
	nav := NewNavigator(sched, ft.Now)

	r := nav.ScheduleRedirect("p1", "login.html", 1500*time.Millisecond)
	assert.Equal(t, testEpoch.Add(1500*time.Millisecond), r.Due)

	ft.Advance(500 * time.Millisecond)
	pending, remaining, ok := nav.Pending("p1")
	require.True(t, ok)
	assert.Equal(t, "login.html", pending.To)
	assert.Equal(t, time.Second, remaining)

	_, ok = nav.Take("p1")
	assert.False(t, ok)

	ft.Advance(time.Second)
	_, _, ok = nav.Pending("p1")
	assert.False(t, ok)

	to, ok := nav.Take("p1")
	require.True(t, ok)
	assert.Equal(t, "login.html", to)

	// 1回だけ
	_, ok = nav.Take("p1")
	assert.False(t, ok)
}

// 後から予約した方が勝つ
func TestNavigator_Replace(t *testing.T) {
	sched, ft := newTestScheduler()
	nav := NewNavigator(sched, ft.Now)

	nav.ScheduleRedirect("p1", "login.html", 1500*time.Millisecond)
	nav.ScheduleRedirect("p1", "index.html", time.Second)

	ft.Advance(2 * time.Second)
	to, ok := nav.Take("p1")
	require.True(t, ok)
	assert.Equal(t, "index.html", to)
}

func TestNavigator_Cancel(t *testing.T) {
	sched, ft := newTestScheduler()
	nav := NewNavigator(sched, ft.Now)

	assert.False(t, nav.CancelRedirect("p1"))

	nav.ScheduleRedirect("p1", "login.html", time.Second)
	assert.True(t, nav.CancelRedirect("p1"))

	ft.Advance(time.Minute)
	_, ok := nav.Take("p1")
	assert.False(t, ok)

	// 発火済みで未消費のものも消せる
	nav.ScheduleRedirect("p1", "login.html", time.Second)
	ft.Advance(time.Second)
	assert.True(t, nav.CancelRedirect("p1"))
	_, ok = nav.Take("p1")
	assert.False(t, ok)
}

// 置き換え前のタイマーが遅れて走っても新しい予約は動かない
func TestNavigator_StaleFireIgnored(t *testing.T) {
	sched, ft := newTestScheduler()
	nav := NewNavigator(sched, ft.Now)

	nav.ScheduleRedirect("p1", "login.html", time.Second)
	staleGen := nav.gen
	nav.ScheduleRedirect("p1", "index.html", time.Minute)

	nav.fire("p1", staleGen)

	_, ok := nav.Take("p1")
	assert.False(t, ok)
	r, _, ok := nav.Pending("p1")
	require.True(t, ok)
	assert.Equal(t, "index.html", r.To)
}

// 取りに来ないプロフィールの発火済みリダイレクトは期限で消える
func TestNavigator_FiredExpires(t *testing.T) {
	sched, ft := newTestScheduler()
	nav := NewNavigator(sched, ft.Now)

	nav.ScheduleRedirect("p1", "login.html", time.Second)
	ft.Advance(time.Second)
	assert.Equal(t, 1, sched.Len())

	ft.Advance(firedRedirectTTL)
	_, ok := nav.Take("p1")
	assert.False(t, ok)
	assert.Equal(t, 0, sched.Len())

	nav.mu.Lock()
	defer nav.mu.Unlock()
	assert.Empty(t, nav.fired)
	assert.Empty(t, nav.pending)
}

// Take したら期限タイマーも残らない
func TestNavigator_TakeCancelsExpiry(t *testing.T) {
	sched, ft := newTestScheduler()
	nav := NewNavigator(sched, ft.Now)

	nav.ScheduleRedirect("p1", "login.html", time.Second)
	ft.Advance(time.Second)

	_, ok := nav.Take("p1")
	require.True(t, ok)
	assert.Equal(t, 0, sched.Len())
}
