package main

import (
	"flag"
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	// SerialPort is the path to the radio module's serial port (e.g. "/dev/ttyS0")
	SerialPort string
	// BaudRate is the baud rate for serial communication with the module (e.g. 38400)
	BaudRate int
	// EnablePin is the GPIO name of the module's enable line (e.g. "GPIO23")
	EnablePin string
	// KeyPin is the GPIO name of the module's command/data mode-select line
	KeyPin string
	// StatePin is the GPIO name of the module's link status line
	StatePin string
	// PairingCode is the passkey configured on the module
	PairingCode string
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string
	// LogFormat selects the log handler ("text" or "json")
	LogFormat string
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.SerialPort = "/dev/ttyS0"
		c.BaudRate = 38400
		c.EnablePin = "GPIO23"
		c.KeyPin = "GPIO24"
		c.StatePin = "GPIO25"
		c.PairingCode = "1234"
		c.LogLevel = "info"
		c.LogFormat = "text"
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if port := os.Getenv("SERIAL_PORT"); port != "" {
			c.SerialPort = port
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.BaudRate = b
			}
		}

		if pin := os.Getenv("ENABLE_PIN"); pin != "" {
			c.EnablePin = pin
		}

		if pin := os.Getenv("KEY_PIN"); pin != "" {
			c.KeyPin = pin
		}

		if pin := os.Getenv("STATE_PIN"); pin != "" {
			c.StatePin = pin
		}

		if code := os.Getenv("PAIRING_CODE"); code != "" {
			c.PairingCode = code
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		if format := os.Getenv("LOG_FORMAT"); format != "" {
			c.LogFormat = format
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.BaudRate = b
				}
			case "enable-pin":
				c.EnablePin = f.Value.String()
			case "key-pin":
				c.KeyPin = f.Value.String()
			case "state-pin":
				c.StatePin = f.Value.String()
			case "pairing-code":
				c.PairingCode = f.Value.String()
			case "log-level":
				c.LogLevel = f.Value.String()
			case "log-format":
				c.LogFormat = f.Value.String()
			}
		})
		return nil
	}
}
