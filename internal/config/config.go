package config

import (
	"encoding/json"
	"os"

	"github.com/fkcurrie/matrix-serial-golang/pkg/matrix"
)

// Config represents the application configuration
type Config struct {
	Serial SerialConfig     `json:"serial"`
	Pins   matrix.PinConfig `json:"pins"`
	Fps    int              `json:"fps"`
}

// SerialConfig selects the serial device carrying the frame stream
type SerialConfig struct {
	Device string `json:"device"`
	Baud   int    `json:"baud"`
}

// LoadConfig loads the configuration from a file, starting from the
// defaults so partial files stay valid
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Serial: SerialConfig{
			Device: "/dev/ttyAMA0",
			Baud:   38400,
		},
		Pins: matrix.PinConfig{
			Chip: "gpiochip0",
			SB:   25,
			LAT:  24,
			RST:  23,
			SCK:  11,
			SDA:  10,
			Rows: [8]int{2, 3, 4, 5, 6, 7, 8, 9},
		},
		Fps: 60,
	}
}
