package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"hc05bridge/radio"
)

func main() {
	flag.String("serial-port", "/dev/ttyS0", "Serial port to connect to the radio module")
	flag.Int("baud-rate", 38400, "Baud rate for serial communication")
	flag.String("enable-pin", "GPIO23", "GPIO name of the module enable line")
	flag.String("key-pin", "GPIO24", "GPIO name of the module mode-select line")
	flag.String("state-pin", "GPIO25", "GPIO name of the module link status line")
	flag.String("pairing-code", "1234", "Pairing passkey configured on the module")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("log-format", "text", "Log format (text, json)")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(config)

	pins, err := radio.NewGPIOPins(config.EnablePin, config.KeyPin, config.StatePin)
	if err != nil {
		logger.Error("Failed to claim control pins", "error", err)
		os.Exit(1)
	}

	bridgeConfig, err := radio.NewConfigBuilder().
		WithDialer(radio.SerialDialer{
			PortName: config.SerialPort,
			BaudRate: config.BaudRate,
		}).
		WithPins(pins).
		WithStatus(pins).
		WithConsole(os.Stdin, os.Stdout).
		WithPairingCode(config.PairingCode).
		WithLogger(logger).
		Build()
	if err != nil {
		logger.Error("Failed to create bridge config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := radio.New(ctx, bridgeConfig)
	if err != nil {
		logger.Error("Failed to create bridge", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting bonding bridge",
		"serial_port", config.SerialPort,
		"baud_rate", config.BaudRate,
	)

	err = b.Loop(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		logger.Info("Event loop stopped", "reason", err)
	default:
		logger.Error("Event loop failed", "error", err)
	}

	logger.Info("Closing radio transport")
	if err := b.Close(); err != nil && !errors.Is(err, radio.ErrAlreadyClosed) {
		logger.Error("Failed to close bridge", "error", err)
		os.Exit(1)
	}
}

func newLogger(config *Config) *slog.Logger {
	logLevel := slog.LevelInfo
	switch config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	if config.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
	}))
}
