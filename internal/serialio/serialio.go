// Package serialio speaks the sensor node's line protocol: newline
// terminated ASCII tokens arriving on a serial port, folded into a
// single-slot pending-trigger flag for the frame loop.
package serialio

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"go.bug.st/serial"
)

// Tokens of the wire protocol. Anything else on the line (including the
// raw numeric button-state debug output) carries no state.
const (
	TokenTrigger       = "TRIGGER"
	TokenNoObject      = "NO_OBJECT"
	TokenButtonPressed = "BUTTON_PRESSED"
)

// Mailbox is the single-slot, latest-wins trigger signal between the serial
// reader and the frame loop. A second trigger arriving before consumption
// overwrites the first; rapid re-triggers coalesce into one batch.
type Mailbox struct {
	pending atomic.Bool
}

// Set marks a trigger as pending.
func (m *Mailbox) Set() {
	m.pending.Store(true)
}

// Consume reports whether a trigger was pending and clears the slot.
func (m *Mailbox) Consume() bool {
	return m.pending.Swap(false)
}

// Ports lists the serial ports visible on this machine.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}

// Open opens the named port at the given baud rate.
func Open(name string, baud int) (serial.Port, error) {
	return serial.Open(name, &serial.Mode{BaudRate: baud})
}

// Reader consumes the token stream and drives the mailbox.
type Reader struct {
	mb  *Mailbox
	log *slog.Logger

	bytesRead atomic.Int64
}

func NewReader(mb *Mailbox, log *slog.Logger) *Reader {
	return &Reader{mb: mb, log: log}
}

// BytesRead reports the cumulative bytes consumed from the port, for the
// debug key on the control surface.
func (r *Reader) BytesRead() int64 {
	return r.bytesRead.Load()
}

// Listen reads lines from src until the stream ends, typically from a
// goroutine for the life of the process. TRIGGER sets the mailbox,
// NO_OBJECT is logged, everything else is ignored. Stream errors end the
// listen but are never fatal to the caller.
func (r *Reader) Listen(src io.Reader) {
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		r.bytesRead.Add(int64(len(sc.Bytes()) + 1))
		switch strings.TrimSpace(sc.Text()) {
		case TokenTrigger:
			r.mb.Set()
			r.log.Debug("trigger received")
		case TokenNoObject:
			r.log.Debug("sensor reports no object in range")
		default:
			// diagnostics: BUTTON_PRESSED and raw button-state lines
		}
	}
	if err := sc.Err(); err != nil {
		r.log.Warn("serial stream ended", "err", err)
	}
}
