package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.bug.st/serial"

	"github.com/fkcurrie/matrix-serial-golang/internal/config"
	"github.com/fkcurrie/matrix-serial-golang/internal/decoder"
	"github.com/fkcurrie/matrix-serial-golang/internal/scheduler"
	"github.com/fkcurrie/matrix-serial-golang/pkg/frame"
	"github.com/fkcurrie/matrix-serial-golang/pkg/matrix"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (built-in defaults if empty)")
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
	log.Printf("Matrix driver initialized on %s", cfg.Pins.Chip)

	port, err := serial.Open(cfg.Serial.Device, &serial.Mode{BaudRate: cfg.Serial.Baud})
	if err != nil {
		log.Fatalf("Failed to open serial port %s: %v", cfg.Serial.Device, err)
	}
	defer port.Close()
	log.Printf("Listening on %s at %d baud", cfg.Serial.Device, cfg.Serial.Baud)

	// All frames come from the fixed pool: one current, one receive,
	// one slot kept free for the pending handoff.
	pool := frame.NewPool()
	exchange := frame.NewExchange(pool)
	current := pool.Get()
	receive := pool.Get()

	dec := decoder.New(exchange, receive)
	sched := scheduler.New(exchange, driver, current, cfg.Fps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := dec.Run(ctx, port); err != nil && ctx.Err() == nil {
			log.Printf("Serial decoder stopped: %v", err)
			cancel()
		}
	}()
	go func() {
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Display scheduler stopped: %v", err)
			cancel()
		}
	}()

	// Handle shutdown gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Shutting down...")
		cancel()
	case <-ctx.Done():
	}

	// Closing the port unblocks the decoder's pending read.
	port.Close()
	log.Printf("Dropped %d superseded frames", exchange.Drops())
}
