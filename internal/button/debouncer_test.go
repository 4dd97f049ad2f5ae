package button

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/picalc/internal/errors"
)

// levelPort is a fake InputPort whose levels are set directly by the test.
type levelPort struct {
	mu     sync.Mutex
	levels map[LineID]bool
}

func newLevelPort() *levelPort {
	return &levelPort{levels: map[LineID]bool{}}
}

func (p *levelPort) set(id LineID, level bool) {
	p.mu.Lock()
	p.levels[id] = level
	p.mu.Unlock()
}

func (p *levelPort) ReadLevel(id LineID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.levels[id]
}

func testThresholds() Thresholds {
	return Thresholds{ShortTicks: 3, LongTicks: 50, TimeoutTicks: 10, SamplePeriod: 10 * time.Millisecond}
}

// newIdleHigh returns a debouncer with line 0 configured idle-high and the
// port resting at the idle level.
func newIdleHigh(t *testing.T, th Thresholds) (*Debouncer, *levelPort) {
	t.Helper()
	port := newLevelPort()
	port.set(0, true)
	d := New(port, th)
	require.NoError(t, d.Configure(0, true))
	return d, port
}

// press holds line id at the active level for ticks scans, then releases it
// for one scan.
func press(d *Debouncer, port *levelPort, id LineID, idle bool, ticks uint32) {
	port.set(id, !idle)
	for i := uint32(0); i < ticks; i++ {
		d.Scan()
	}
	port.set(id, idle)
	d.Scan()
}

func TestTicksFromDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		d      time.Duration
		period time.Duration
		want   uint32
	}{
		{"exact multiple", 80 * time.Millisecond, 10 * time.Millisecond, 8},
		{"floors partial period", 89 * time.Millisecond, 10 * time.Millisecond, 8},
		{"below one period", 9 * time.Millisecond, 10 * time.Millisecond, 0},
		{"negative duration", -time.Second, 10 * time.Millisecond, 0},
		{"zero period", time.Second, 0, 0},
		{"negative period", time.Second, -time.Millisecond, 0},
		{"saturates", time.Duration(math.MaxInt64), time.Nanosecond, math.MaxUint32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TicksFromDuration(tt.d, tt.period))
		})
	}
}

func TestDefaultThresholds(t *testing.T) {
	t.Parallel()
	th := DefaultThresholds()
	assert.Equal(t, uint32(8), th.ShortTicks)
	assert.Equal(t, uint32(50), th.LongTicks)
	assert.Equal(t, uint32(50), th.TimeoutTicks)
	assert.Equal(t, 10*time.Millisecond, th.SamplePeriod)
	assert.Equal(t, 500*time.Millisecond, th.Duration(th.LongTicks))
}

func TestClassification_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "short", Short.String())
	assert.Equal(t, "long", Long.String())
	assert.Equal(t, "unknown", Classification(9).String())
}

func TestDebouncer_ShortAndLongPress(t *testing.T) {
	t.Parallel()

	t.Run("five ticks low is short", func(t *testing.T) {
		t.Parallel()
		d, port := newIdleHigh(t, testThresholds())
		press(d, port, 0, true, 5)
		assert.Equal(t, Short, d.Read(0, true))
	})

	t.Run("sixty ticks low is long", func(t *testing.T) {
		t.Parallel()
		d, port := newIdleHigh(t, testThresholds())
		press(d, port, 0, true, 60)
		assert.Equal(t, Long, d.Read(0, true))
	})
}

func TestDebouncer_ThresholdBoundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		ticks uint32
		want  Classification
	}{
		{0, Idle},
		{1, Idle},
		{3, Idle}, // equal to the short threshold does not commit
		{4, Short},
		{49, Short},
		{50, Long}, // equal to the long threshold is long
		{51, Long},
	}
	for _, tt := range tests {
		d, port := newIdleHigh(t, testThresholds())
		press(d, port, 0, true, tt.ticks)
		assert.Equalf(t, tt.want, d.Read(0, true), "press of %d ticks", tt.ticks)
	}
}

func TestDebouncer_ClassificationOnlyOnRelease(t *testing.T) {
	t.Parallel()
	d, port := newIdleHigh(t, testThresholds())

	port.set(0, false)
	for i := 0; i < 100; i++ {
		d.Scan()
		require.Equal(t, Idle, d.Read(0, false), "held button must not classify before release")
	}
	port.set(0, true)
	d.Scan()
	assert.Equal(t, Long, d.Read(0, false))
}

func TestDebouncer_ReadAndClear(t *testing.T) {
	t.Parallel()
	d, port := newIdleHigh(t, testThresholds())
	press(d, port, 0, true, 5)

	assert.Equal(t, Short, d.Read(0, false), "read without reset keeps the latch")
	assert.Equal(t, Short, d.Read(0, true))
	assert.Equal(t, Idle, d.Read(0, true), "second read after reset must be idle")
}

func TestDebouncer_StaleTimeout(t *testing.T) {
	t.Parallel()
	th := testThresholds()
	d, port := newIdleHigh(t, th)

	press(d, port, 0, true, 5) // commit at tick T
	require.Equal(t, Short, d.Read(0, false))

	for i := uint32(1); i < th.TimeoutTicks; i++ {
		d.Scan()
		require.Equalf(t, Short, d.Read(0, false), "still latched at T+%d", i)
	}
	d.Scan() // T+ceiling
	assert.Equal(t, Idle, d.Read(0, false), "reverts exactly at T+ceiling")
	assert.Equal(t, uint64(1), d.StaleReverts())
	d.Scan() // T+ceiling+1
	assert.Equal(t, Idle, d.Read(0, false))
	assert.Equal(t, uint64(1), d.StaleReverts())

	for i := 0; i < 3*int(th.TimeoutTicks); i++ {
		d.Scan()
	}
	assert.Equal(t, Idle, d.Read(0, false), "revert must not re-arm")
	assert.Equal(t, uint64(1), d.StaleReverts())
}

func TestDebouncer_ReadResetsBeforeTimeout(t *testing.T) {
	t.Parallel()
	th := testThresholds()
	d, port := newIdleHigh(t, th)

	press(d, port, 0, true, 5)
	require.Equal(t, Short, d.Read(0, true))
	for i := uint32(0); i < th.TimeoutTicks+1; i++ {
		d.Scan()
	}
	assert.Equal(t, uint64(0), d.StaleReverts(), "consumed classification is not stale")
}

func TestDebouncer_ZeroTimeoutKeepsLatch(t *testing.T) {
	t.Parallel()
	th := testThresholds()
	th.TimeoutTicks = 0
	d, port := newIdleHigh(t, th)

	press(d, port, 0, true, 5)
	for i := 0; i < 1000; i++ {
		d.Scan()
	}
	assert.Equal(t, Short, d.Read(0, true))
}

func TestDebouncer_IdleLowPolarity(t *testing.T) {
	t.Parallel()
	port := newLevelPort()
	d := New(port, testThresholds())
	require.NoError(t, d.Configure(1, false))

	press(d, port, 1, false, 5)
	assert.Equal(t, Short, d.Read(1, true))
}

func TestDebouncer_UnconfiguredLines(t *testing.T) {
	t.Parallel()
	d := New(newLevelPort(), testThresholds())

	assert.Equal(t, Idle, d.Read(2, true))
	_, err := d.ReadChecked(2, false)
	assert.ErrorIs(t, err, apperrors.ErrUnconfiguredLine)

	_, err = d.ReadChecked(200, false)
	assert.ErrorIs(t, err, apperrors.ErrUnconfiguredLine)

	err = d.Configure(DefaultLines, true)
	var lineErr apperrors.UnconfiguredLineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, DefaultLines, lineErr.Line)
	assert.False(t, d.Configured(2))
}

func TestDebouncer_WithLines(t *testing.T) {
	t.Parallel()
	d := New(newLevelPort(), testThresholds(), WithLines(8))
	assert.NoError(t, d.Configure(7, true))
	assert.True(t, d.Configured(7))
	assert.Error(t, d.Configure(8, true))
}

func TestDebouncer_PressCounterSaturates(t *testing.T) {
	t.Parallel()
	d, port := newIdleHigh(t, testThresholds())

	d.lines[0].press = math.MaxUint32 - 1
	port.set(0, false)
	d.Scan()
	d.Scan()
	d.Scan()
	assert.Equal(t, uint32(math.MaxUint32), d.lines[0].press)

	port.set(0, true)
	d.Scan()
	assert.Equal(t, Long, d.Read(0, true))
}

func TestDebouncer_SetTimeout(t *testing.T) {
	t.Parallel()
	d := New(newLevelPort(), testThresholds())
	d.SetTimeout(95 * time.Millisecond)
	assert.Equal(t, uint32(9), d.Thresholds().TimeoutTicks)
}

func TestDebouncer_ConcurrentScanAndRead(t *testing.T) {
	t.Parallel()
	d, port := newIdleHigh(t, testThresholds())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			port.set(0, i%10 < 6)
			d.Scan()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			c := d.Read(0, true)
			if c != Idle && c != Short && c != Long {
				t.Errorf("unexpected classification %v", c)
			}
		}
	}()
	wg.Wait()
}
