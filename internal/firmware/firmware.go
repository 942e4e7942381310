// Package firmware is the sensor node: a single-threaded poll loop that
// debounces a button edge, gates it on a proximity reading and emits the
// wire tokens internal/serialio parses.
package firmware

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/iburimskiy/proximity-art/internal/config"
	"github.com/iburimskiy/proximity-art/internal/serialio"
)

// speed of sound in air, cm per microsecond; the echo travels out and back.
const soundSpeedCmPerUs = 0.0343

// Button reads the trigger button's current state.
type Button interface {
	Pressed() bool
}

// Sonar performs one pulse-echo round trip. ok is false when no echo was
// observed within the sensor's timeout window.
type Sonar interface {
	Ping() (rtt time.Duration, ok bool)
}

// Node polls the button and sonar at a fixed period and writes tokens to
// the serial line. No interrupts, no concurrency: the distance measurement
// blocks for the (bounded) round-trip time.
type Node struct {
	Button Button
	Sonar  Sonar
	Out    io.Writer

	// Sleep is replaceable for tests; nil means time.Sleep.
	Sleep func(time.Duration)

	last bool
}

func NewNode(btn Button, sonar Sonar, out io.Writer) *Node {
	return &Node{Button: btn, Sonar: sonar, Out: out, Sleep: time.Sleep}
}

// DistanceCm measures the proximity distance once. A missed echo reads as
// rtt 0 and therefore distance 0, which always passes the proximity gate:
// with nothing in front of the sensor every button edge fires a trigger.
// That matches the deployed node's observable behavior and is kept as is.
func (n *Node) DistanceCm() float64 {
	rtt, ok := n.Sonar.Ping()
	if !ok {
		rtt = 0
	}
	return float64(rtt.Microseconds()) * soundSpeedCmPerUs / 2
}

// Poll runs one cycle: read, measure, emit on a gated edge, always emit the
// raw state debug line, remember the state.
func (n *Node) Poll() {
	cur := n.Button.Pressed()
	dist := n.DistanceCm()

	if cur != n.last && dist < config.TriggerDistanceCm {
		fmt.Fprintln(n.Out, serialio.TokenButtonPressed)
		fmt.Fprintln(n.Out, serialio.TokenTrigger)
		n.Sleep(config.DebouncePeriod)
	}

	fmt.Fprintf(n.Out, "%d\n", boolToInt(cur))
	n.last = cur
}

// Run polls until the context is canceled.
func (n *Node) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		n.Poll()
		n.Sleep(config.PollPeriod)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
