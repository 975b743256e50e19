package matrix

import (
	"fmt"
	"log"

	"github.com/warthog618/go-gpiocdev"
)

// PinConfig names the GPIO chip and the line offset for each matrix
// role.
type PinConfig struct {
	Chip string `json:"chip"`
	SB   int    `json:"sb"`
	LAT  int    `json:"lat"`
	RST  int    `json:"rst"`
	SCK  int    `json:"sck"`
	SDA  int    `json:"sda"`
	Rows [8]int `json:"rows"`
}

// RequestPins requests every matrix line from the GPIO character
// device as a low output. The returned cleanup releases all lines; on
// error every line requested so far has already been released.
func RequestPins(cfg PinConfig) (Pins, func(), error) {
	var pins Pins
	var lines []*gpiocdev.Line

	closeAll := func() {
		for _, l := range lines {
			if err := l.Close(); err != nil {
				log.Printf("Error closing GPIO line: %v", err)
			}
		}
	}

	request := func(offset int) (*gpiocdev.Line, error) {
		line, err := gpiocdev.RequestLine(cfg.Chip, offset, gpiocdev.AsOutput(0))
		if err != nil {
			return nil, fmt.Errorf("failed to request line %d on %s: %v", offset, cfg.Chip, err)
		}
		lines = append(lines, line)
		return line, nil
	}

	var err error
	if pins.SB, err = request(cfg.SB); err != nil {
		closeAll()
		return Pins{}, nil, err
	}
	if pins.LAT, err = request(cfg.LAT); err != nil {
		closeAll()
		return Pins{}, nil, err
	}
	if pins.RST, err = request(cfg.RST); err != nil {
		closeAll()
		return Pins{}, nil, err
	}
	if pins.SCK, err = request(cfg.SCK); err != nil {
		closeAll()
		return Pins{}, nil, err
	}
	if pins.SDA, err = request(cfg.SDA); err != nil {
		closeAll()
		return Pins{}, nil, err
	}
	for i, offset := range cfg.Rows {
		if pins.Rows[i], err = request(offset); err != nil {
			closeAll()
			return Pins{}, nil, err
		}
	}

	return pins, closeAll, nil
}
