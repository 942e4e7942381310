// Package game runs the host-side frame loop: it consumes the pending
// trigger, spawns generation batches and ages the element collection every
// tick.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/proximity-art/internal/art"
	"github.com/iburimskiy/proximity-art/internal/config"
	"github.com/iburimskiy/proximity-art/internal/palette"
	"github.com/iburimskiy/proximity-art/internal/serialio"
)

var backgroundColor = color.RGBA{R: 8, G: 10, B: 18, A: 255}

// command is one single-key action of the manual control surface.
type command int

const (
	cmdClear command = iota
	cmdPalette
	cmdTrigger
	cmdDebug
)

// Game owns all mutable engine state. Only the frame loop touches the
// collection; the serial reader reaches it solely through the mailbox.
type Game struct {
	rng     *rand.Rand
	pal     palette.Palette
	scene   *art.Collection
	mailbox *serialio.Mailbox
	reader  *serialio.Reader // nil in degraded (manual-trigger-only) mode
	chime   *Chime           // nil when audio is unavailable
	log     *slog.Logger

	port    string // sensor port name, "" in degraded mode
	status  string
	prevKey map[ebiten.Key]bool
}

// New builds the engine around an existing mailbox. reader and chime may be
// nil; port is only shown in the status line. The rng seeds the palette and
// every generator, so a fixed-seed rng reproduces a session.
func New(rng *rand.Rand, mb *serialio.Mailbox, reader *serialio.Reader, chime *Chime, port string, log *slog.Logger) *Game {
	return &Game{
		rng:     rng,
		pal:     palette.Generate(rng),
		scene:   art.NewCollection(),
		mailbox: mb,
		reader:  reader,
		chime:   chime,
		log:     log,
		port:    port,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyC) {
		g.apply(cmdClear)
	}
	if justPressed(ebiten.KeyP) {
		g.apply(cmdPalette)
	}
	if justPressed(ebiten.KeySpace) {
		g.apply(cmdTrigger)
	}
	if justPressed(ebiten.KeyB) {
		g.apply(cmdDebug)
	}

	g.step()
	return nil
}

// step is one tick of engine state: consume the pending trigger (at most
// one batch per frame) and age the collection.
func (g *Game) step() {
	if g.mailbox.Consume() {
		g.spawn()
	}
	g.scene.Update()
}

func (g *Game) apply(cmd command) {
	switch cmd {
	case cmdClear:
		g.scene.Clear()
		g.status = "cleared"
	case cmdPalette:
		g.pal = palette.Generate(g.rng)
		g.status = "new palette"
	case cmdTrigger:
		g.spawn()
	case cmdDebug:
		var n int64
		if g.reader != nil {
			n = g.reader.BytesRead()
		}
		g.status = fmt.Sprintf("serial bytes read: %d", n)
		g.log.Info("serial debug", "bytes_read", n)
	}
}

// spawn runs one uniformly chosen generator and appends its batch. The
// palette regenerates afterwards with fixed probability so long sessions
// drift through color schemes on their own.
func (g *Game) spawn() {
	kind := art.Kind(g.rng.Intn(int(art.KindCount)))
	batch := art.Generate(g.rng, kind, g.pal, config.WindowWidth, config.WindowHeight)
	g.scene.Append(batch...)
	g.status = kind.String()
	g.chime.Play(g.pal[0].H)
	if g.rng.Float64() < config.PaletteRegenChance {
		g.pal = palette.Generate(g.rng)
	}
	g.log.Info("generation batch", "kind", kind.String(), "elements", len(batch))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scene.Render(newSurface(screen))

	source := "sensor: " + g.port
	if g.port == "" {
		source = "no sensor - Space triggers manually"
	}
	line := fmt.Sprintf("%s | elements: %d", source, g.scene.Len())
	if g.status != "" {
		line += " | " + g.status
	}
	ebitenutil.DebugPrintAt(screen, line, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
