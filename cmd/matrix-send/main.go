package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.bug.st/serial"

	"github.com/fkcurrie/matrix-serial-golang/internal/decoder"
	"github.com/fkcurrie/matrix-serial-golang/pkg/frame"
	"github.com/fkcurrie/matrix-serial-golang/pkg/pixel"
)

// Host-side sender: renders a frame and streams it over the serial
// wire protocol (a resync byte followed by 192 pixel bytes).
func main() {
	device := flag.String("device", "/dev/ttyUSB0", "Serial device connected to the matrix controller")
	baud := flag.Int("baud", 38400, "Serial baud rate")
	svgPath := flag.String("svg", "", "SVG file to render onto the 8x8 grid")
	fps := flag.Int("fps", 30, "Frames per second to send")
	once := flag.Bool("once", false, "Send a single frame and exit")
	flag.Parse()

	var f *frame.Frame
	var err error
	if *svgPath != "" {
		f, err = renderSVG(*svgPath)
		if err != nil {
			log.Fatalf("Failed to render SVG: %v", err)
		}
	} else {
		f = new(frame.Frame)
		f.Gradient(pixel.Blue)
	}

	port, err := serial.Open(*device, &serial.Mode{BaudRate: *baud})
	if err != nil {
		log.Fatalf("Failed to open serial port %s: %v", *device, err)
	}
	defer port.Close()

	// Resync first so the receiver's cursor is at a known position.
	payload := append([]byte{decoder.Resync}, f.Bytes()...)

	if err := send(port, payload); err != nil {
		log.Fatalf("Failed to send frame: %v", err)
	}
	if *once {
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	log.Printf("Streaming to %s at %d fps, Ctrl-C to stop", *device, *fps)
	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		case <-ticker.C:
			if err := send(port, payload); err != nil {
				log.Fatalf("Failed to send frame: %v", err)
			}
		}
	}
}

func send(port serial.Port, payload []byte) error {
	if _, err := port.Write(payload); err != nil {
		return fmt.Errorf("failed to write %d bytes: %v", len(payload), err)
	}
	return nil
}

// renderSVG rasterizes the SVG onto the 8x8 grid.
func renderSVG(path string) (*frame.Frame, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	const size = frame.Size
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	f := new(frame.Frame)
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			c := img.RGBAAt(col-1, row-1)
			f.Set(row, col, pixel.Color{R: c.R, G: c.G, B: c.B})
		}
	}
	return f, nil
}
