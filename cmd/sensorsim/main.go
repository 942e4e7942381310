// sensorsim runs the sensor node firmware against simulated hardware and
// writes the wire tokens to stdout or a real serial port, so the host can
// be exercised without the physical installation.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/iburimskiy/proximity-art/internal/config"
	"github.com/iburimskiy/proximity-art/internal/firmware"
	"github.com/iburimskiy/proximity-art/internal/serialio"
)

// simButton toggles at random, roughly once a second at the default poll
// period.
type simButton struct {
	rng   *rand.Rand
	state bool
}

func (b *simButton) Pressed() bool {
	if b.rng.Float64() < 0.2 {
		b.state = !b.state
	}
	return b.state
}

// simSonar wanders between 2 and 40 cm and misses the echo now and then,
// the same failure mode the real rangefinder shows.
type simSonar struct {
	rng *rand.Rand
}

func (s *simSonar) Ping() (time.Duration, bool) {
	if s.rng.Float64() < 0.1 {
		return 0, false
	}
	distCm := 2 + s.rng.Float64()*38
	rtt := time.Duration(distCm * 2 / 0.0343 * float64(time.Microsecond))
	return rtt, true
}

func main() {
	portName := flag.String("port", "", "serial port to write to (default stdout)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "simulation seed")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var out io.Writer = os.Stdout
	if *portName != "" {
		port, err := serialio.Open(*portName, config.BaudRate)
		if err != nil {
			logger.Error("opening port", "port", *portName, "err", err)
			os.Exit(1)
		}
		defer port.Close()
		out = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rng := rand.New(rand.NewSource(*seed))
	node := firmware.NewNode(&simButton{rng: rng}, &simSonar{rng: rng}, out)

	logger.Info("simulated sensor node polling", "seed", *seed)
	node.Run(ctx)
	logger.Info("stopped")
}
