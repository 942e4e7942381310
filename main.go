package main

import (
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/proximity-art/internal/config"
	"github.com/iburimskiy/proximity-art/internal/game"
	"github.com/iburimskiy/proximity-art/internal/serialio"
)

func main() {
	portFlag := flag.String("port", "", "sensor serial port (skips discovery)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	mb := &serialio.Mailbox{}
	var reader *serialio.Reader

	portName, err := pickPort(*portFlag)
	if err != nil {
		logger.Warn("no sensor connected, running in manual-trigger mode", "err", err)
		portName = ""
	}
	if portName != "" {
		port, err := serialio.Open(portName, config.BaudRate)
		if err != nil {
			logger.Warn("sensor port open failed, running in manual-trigger mode",
				"port", portName, "err", err)
			portName = ""
		} else {
			defer port.Close()
			reader = serialio.NewReader(mb, logger)
			go reader.Listen(port)
			logger.Info("listening for sensor triggers", "port", portName, "baud", config.BaudRate)
		}
	}

	chime, err := game.NewChime()
	if err != nil {
		logger.Warn("audio unavailable, trigger chime disabled", "err", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(rng, mb, reader, chime, portName, logger)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Proximity Art - Space: trigger, C: clear, P: palette, B: debug, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("engine stopped", "err", err)
		os.Exit(1)
	}
}

// pickPort resolves the sensor port: the flag wins, a single enumerated
// port is taken as is, and with several a selection dialog asks which one,
// falling back to the first on cancel.
func pickPort(flagged string) (string, error) {
	if flagged != "" {
		return flagged, nil
	}
	ports, err := serialio.Ports()
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", errors.New("no serial ports found")
	}
	if len(ports) == 1 {
		return ports[0], nil
	}
	sel, err := zenity.List("Select the sensor node's port", ports, zenity.Title("Sensor Port"))
	if err != nil || sel == "" {
		return ports[0], nil
	}
	return sel, nil
}
