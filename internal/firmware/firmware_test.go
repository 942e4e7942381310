package firmware

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/proximity-art/internal/config"
)

type fakeButton struct {
	pressed bool
}

func (b *fakeButton) Pressed() bool { return b.pressed }

type fakeSonar struct {
	rtt time.Duration
	ok  bool
}

func (s *fakeSonar) Ping() (time.Duration, bool) { return s.rtt, s.ok }

// rttForCm returns the round-trip time a target at the given distance
// produces.
func rttForCm(cm float64) time.Duration {
	return time.Duration(cm * 2 / 0.0343 * float64(time.Microsecond))
}

func newTestNode(btn *fakeButton, sonar *fakeSonar) (*Node, *bytes.Buffer, *[]time.Duration) {
	out := &bytes.Buffer{}
	var sleeps []time.Duration
	n := NewNode(btn, sonar, out)
	n.Sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return n, out, &sleeps
}

func TestEdgeNearObjectEmitsTrigger(t *testing.T) {
	btn := &fakeButton{pressed: true}
	n, out, sleeps := newTestNode(btn, &fakeSonar{rtt: rttForCm(10), ok: true})

	n.Poll()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{"BUTTON_PRESSED", "TRIGGER", "1"}, lines)
	require.Equal(t, []time.Duration{config.DebouncePeriod}, *sleeps)
}

func TestNoEdgeNeverTriggers(t *testing.T) {
	btn := &fakeButton{pressed: true}
	n, out, _ := newTestNode(btn, &fakeSonar{rtt: 0, ok: false})

	n.Poll() // edge: false -> true
	out.Reset()

	n.Poll() // steady state, distance 0
	n.Poll()
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{"1", "1"}, lines, "no edge must emit only debug lines")
}

func TestEdgeFarObjectSuppressed(t *testing.T) {
	btn := &fakeButton{pressed: true}
	n, out, sleeps := newTestNode(btn, &fakeSonar{rtt: rttForCm(30), ok: true})

	n.Poll()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{"1"}, lines)
	require.Empty(t, *sleeps, "no debounce without a trigger")
}

func TestMissedEchoPassesGate(t *testing.T) {
	// a missed echo reads as distance 0, so the edge fires even with
	// nothing in front of the sensor
	btn := &fakeButton{pressed: true}
	n, out, _ := newTestNode(btn, &fakeSonar{ok: false})

	n.Poll()

	require.Contains(t, out.String(), "TRIGGER\n")
}

func TestReleaseEdgeAlsoTriggers(t *testing.T) {
	btn := &fakeButton{pressed: true}
	sonar := &fakeSonar{rtt: rttForCm(5), ok: true}
	n, out, _ := newTestNode(btn, sonar)

	n.Poll()
	out.Reset()

	btn.pressed = false
	n.Poll() // edge: true -> false

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{"BUTTON_PRESSED", "TRIGGER", "0"}, lines)
}

func TestDebugLineEveryCycle(t *testing.T) {
	btn := &fakeButton{}
	n, out, _ := newTestNode(btn, &fakeSonar{rtt: rttForCm(30), ok: true})

	for i := 0; i < 5; i++ {
		n.Poll()
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{"0", "0", "0", "0", "0"}, lines)
}

func TestDistanceConversion(t *testing.T) {
	n, _, _ := newTestNode(&fakeButton{}, &fakeSonar{rtt: rttForCm(20), ok: true})
	require.InDelta(t, 20.0, n.DistanceCm(), 0.1)

	n.Sonar = &fakeSonar{rtt: 5 * time.Second, ok: false}
	require.Equal(t, 0.0, n.DistanceCm(), "missed echo resolves to zero distance")
}
