package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(delta time.Duration) {
	clock.now = clock.now.Add(delta)
}

type recordingObserver struct {
	states []State
}

func (observer *recordingObserver) StateChanged(state State) {
	observer.states = append(observer.states, state)
}

func TestNewTimerInitialState(t *testing.T) {
	tm := New()

	require.False(t, tm.Running())
	require.False(t, tm.Started())
	require.Equal(t, StateIdle, tm.State())
	require.Equal(t, WorkTime, tm.Remaining())
}

func TestPollWhileStoppedChangesNothing(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)

	for i := 0; i < 10; i++ {
		clock.Advance(time.Hour)
		tm.Poll()
	}

	require.Equal(t, StateIdle, tm.State())
	require.Equal(t, WorkTime, tm.Remaining())
	require.False(t, tm.Started())
}

func TestStartPerformsSilentFirstTransition(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)
	observer := &recordingObserver{}
	tm.SetObserver(observer)

	tm.Start()

	require.True(t, tm.Running())
	require.True(t, tm.Started())
	require.Equal(t, StateWork, tm.State())
	require.Equal(t, WorkTime, tm.Remaining())
	require.Empty(t, observer.states, "start must not notify the observer")
}

func TestStartIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)
	observer := &recordingObserver{}
	tm.SetObserver(observer)

	tm.Start()
	clock.Advance(time.Minute)
	tm.Poll()
	before := tm.Remaining()

	tm.Start()

	require.Equal(t, StateWork, tm.State())
	require.Equal(t, before, tm.Remaining())
	require.Empty(t, observer.states)
}

func TestStopFreezesCountdown(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)

	tm.Start()
	clock.Advance(10 * time.Minute)
	tm.Poll()
	frozen := tm.Remaining()
	require.Equal(t, WorkTime-10*time.Minute, frozen)

	tm.Stop()
	require.False(t, tm.Running())

	// Time passing while stopped is never charged.
	for i := 0; i < 5; i++ {
		clock.Advance(time.Hour)
		tm.Poll()
	}
	require.Equal(t, frozen, tm.Remaining())
	require.Equal(t, StateWork, tm.State())

	tm.Start()
	require.True(t, tm.Running())
	require.Equal(t, frozen, tm.Remaining())
	require.True(t, tm.Started(), "started flag survives stop")
}

func TestToggle(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)

	tm.Toggle()
	require.True(t, tm.Running())
	require.Equal(t, StateWork, tm.State())

	tm.Toggle()
	require.False(t, tm.Running())

	tm.Toggle()
	require.True(t, tm.Running())
	require.Equal(t, StateWork, tm.State(), "restart must not advance the phase")
}

func TestExpiryIsDetectedOnePollLate(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)
	observer := &recordingObserver{}
	tm.SetObserver(observer)

	tm.Start()

	// First poll consumes exactly the whole work phase: the phase is
	// marked expired but the state does not advance yet.
	clock.Advance(WorkTime)
	tm.Poll()
	require.Equal(t, StateWork, tm.State())
	require.Equal(t, time.Duration(0), tm.Remaining())
	require.Empty(t, observer.states)

	// Second poll performs the transition and notifies, without charging
	// any time against the fresh phase.
	tm.Poll()
	require.Equal(t, StateShortBreak, tm.State())
	require.Equal(t, ShortBreakTime, tm.Remaining())
	require.Equal(t, []State{StateShortBreak}, observer.states)
}

func TestOvershootClampsToExpiry(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)

	tm.Start()
	clock.Advance(WorkTime + 7*time.Hour)
	tm.Poll()

	require.Equal(t, StateWork, tm.State())
	require.Equal(t, time.Duration(0), tm.Remaining())

	tm.Poll()
	require.Equal(t, StateShortBreak, tm.State())
}

func TestExpiryDrivenCycleOrder(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)
	observer := &recordingObserver{}
	tm.SetObserver(observer)

	tm.Start()

	want := []State{
		StateShortBreak, StateWork,
		StateShortBreak, StateWork,
		StateShortBreak, StateWork,
		StateLongBreak, StateWork,
		StateShortBreak, StateWork,
	}
	for range want {
		clock.Advance(tm.State().Duration())
		tm.Poll() // marks expiry
		tm.Poll() // performs the transition
	}

	require.Equal(t, want, observer.states)
}

func TestReplacingObserverDiscardsPrevious(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)
	first := &recordingObserver{}
	second := &recordingObserver{}
	tm.SetObserver(first)
	tm.SetObserver(second)

	tm.Start()
	clock.Advance(WorkTime)
	tm.Poll()
	tm.Poll()

	require.Empty(t, first.states)
	require.Equal(t, []State{StateShortBreak}, second.states)
}

func TestFreshTimerMatchesInitialConfiguration(t *testing.T) {
	clock := newFakeClock()
	tm := NewWithNow(clock.Now)
	observer := &recordingObserver{}
	tm.SetObserver(observer)

	tm.Start()
	clock.Advance(WorkTime)
	tm.Poll()
	tm.Poll()

	// Reset constructs a fresh value; the observer registration is gone.
	tm = NewWithNow(clock.Now)

	require.False(t, tm.Running())
	require.False(t, tm.Started())
	require.Equal(t, StateIdle, tm.State())
	require.Equal(t, uint8(0), tm.breakCounter)

	tm.Start()
	clock.Advance(WorkTime)
	tm.Poll()
	tm.Poll()
	require.Equal(t, []State{StateShortBreak}, observer.states,
		"discarded observer must not hear from the replacement timer")
}
