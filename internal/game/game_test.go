package game

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/proximity-art/internal/serialio"
)

// newTestGame builds an engine in degraded mode (no reader, no chime) with
// a fixed seed. Tests drive step/apply directly and never touch ebiten.
func newTestGame(t *testing.T) (*Game, *serialio.Mailbox) {
	t.Helper()
	mb := &serialio.Mailbox{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(rand.New(rand.NewSource(12)), mb, nil, nil, "", logger), mb
}

func TestPendingTriggerSpawnsOneBatch(t *testing.T) {
	g, mb := newTestGame(t)

	mb.Set()
	g.step()
	n := g.scene.Len()
	require.Greater(t, n, 0, "a pending trigger must spawn a batch")
	require.False(t, mb.Consume(), "flag resets after the frame acts")

	g.step()
	require.Equal(t, n, g.scene.Len(), "no second batch without a new trigger")
}

func TestCoalescedTriggersSpawnOnce(t *testing.T) {
	g, mb := newTestGame(t)

	mb.Set()
	mb.Set()
	g.step()
	n := g.scene.Len()
	require.Greater(t, n, 0)

	g.step()
	require.Equal(t, n, g.scene.Len(), "coalesced triggers make one batch, not two")
}

func TestManualTriggerBypassesSensorPath(t *testing.T) {
	g, mb := newTestGame(t)

	g.apply(cmdTrigger)
	require.Greater(t, g.scene.Len(), 0)
	require.False(t, mb.Consume(), "manual trigger must not touch the mailbox")
}

func TestClearEmptiesCollection(t *testing.T) {
	g, _ := newTestGame(t)

	for i := 0; i < 4; i++ {
		g.apply(cmdTrigger)
	}
	require.Greater(t, g.scene.Len(), 0)

	g.apply(cmdClear)
	require.Equal(t, 0, g.scene.Len())
}

func TestPaletteCommandRegenerates(t *testing.T) {
	g, _ := newTestGame(t)

	before := g.pal
	g.apply(cmdPalette)
	require.NotEqual(t, before, g.pal)
}

func TestDebugCommandWithoutReader(t *testing.T) {
	g, _ := newTestGame(t)
	g.apply(cmdDebug)
	require.Equal(t, "serial bytes read: 0", g.status)
}

func TestStepAgesElementsToRemoval(t *testing.T) {
	g, mb := newTestGame(t)

	mb.Set()
	g.step()
	require.Greater(t, g.scene.Len(), 0)

	// 255 life at decay 2 is gone within 128 ticks
	for i := 0; i < 128; i++ {
		g.step()
	}
	require.Equal(t, 0, g.scene.Len())
}
