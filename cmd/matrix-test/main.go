package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fkcurrie/matrix-serial-golang/internal/config"
	"github.com/fkcurrie/matrix-serial-golang/pkg/frame"
	"github.com/fkcurrie/matrix-serial-golang/pkg/matrix"
	"github.com/fkcurrie/matrix-serial-golang/pkg/pixel"
)

// Hardware diagnostic: drives test patterns straight through the
// driver, no serial input involved. Rotates through red, green and
// blue once a second while refreshing the panel as fast as the GPIO
// path allows.
func main() {
	configPath := flag.String("config", "", "Path to configuration file (built-in defaults if empty)")
	pattern := flag.String("pattern", "gradient", "Test pattern: gradient or solid")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	pins, closePins, err := matrix.RequestPins(cfg.Pins)
	if err != nil {
		log.Fatalf("Failed to request GPIO lines: %v", err)
	}
	defer closePins()

	driver := matrix.New(pins)
	log.Printf("Displaying %s test pattern, Ctrl-C to stop", *pattern)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	colors := []pixel.Color{pixel.Red, pixel.Green, pixel.Blue}
	var f frame.Frame
	fill(&f, *pattern, colors[0])

	rotate := time.NewTicker(time.Second)
	defer rotate.Stop()

	idx := 0
	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		case <-rotate.C:
			idx = (idx + 1) % len(colors)
			fill(&f, *pattern, colors[idx])
		default:
			driver.DisplayFull(&f)
		}
	}
}

func fill(f *frame.Frame, pattern string, c pixel.Color) {
	switch pattern {
	case "solid":
		f.Solid(c)
	default:
		f.Gradient(c)
	}
}
