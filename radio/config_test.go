package radio_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"hc05bridge/radio"
)

func TestConfigBuilder(t *testing.T) {
	t.Run("ErrNoDialer when dialer missing", func(t *testing.T) {
		_, err := radio.NewConfigBuilder().Build()
		if !errors.Is(err, radio.ErrNoDialer) {
			t.Errorf("expected ErrNoDialer, got: %v", err)
		}
	})

	t.Run("ErrNoPins when pins missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := radio.NewConfigBuilder().
			WithDialer(radio.NewMockDialer(ctrl)).
			Build()
		if !errors.Is(err, radio.ErrNoPins) {
			t.Errorf("expected ErrNoPins, got: %v", err)
		}
	})

	t.Run("ErrNoStatus when link status missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := radio.NewConfigBuilder().
			WithDialer(radio.NewMockDialer(ctrl)).
			WithPins(radio.NewMockControlPins(ctrl)).
			Build()
		if !errors.Is(err, radio.ErrNoStatus) {
			t.Errorf("expected ErrNoStatus, got: %v", err)
		}
	})

	t.Run("Defaults fill the optional fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config, err := radio.NewConfigBuilder().
			WithDialer(radio.NewMockDialer(ctrl)).
			WithPins(radio.NewMockControlPins(ctrl)).
			WithStatus(radio.NewMockLinkStatus(ctrl)).
			Build()
		if err != nil {
			t.Fatalf("unexpected error from Build(): %v", err)
		}

		if config.PairingCode != "1234" {
			t.Errorf("pairing code: got %q, want default 1234", config.PairingCode)
		}
		if config.PeerCapacity != radio.DefaultPeerCapacity {
			t.Errorf("peer capacity: got %d, want %d", config.PeerCapacity, radio.DefaultPeerCapacity)
		}
		if config.StatusPollInterval != 50*time.Millisecond {
			t.Errorf("status poll interval: got %v, want 50ms", config.StatusPollInterval)
		}
		if config.BootSettle != time.Second {
			t.Errorf("boot settle: got %v, want 1s", config.BootSettle)
		}
		if config.ConsoleOut == nil {
			t.Error("console output should default to a discard writer")
		}
		if config.Confirmer == nil {
			t.Error("confirmer should default to a terminal confirmer")
		}
		if config.Logger == nil {
			t.Error("logger should default to slog.Default()")
		}
	})

	t.Run("Explicit values survive Build", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config, err := radio.NewConfigBuilder().
			WithDialer(radio.NewMockDialer(ctrl)).
			WithPins(radio.NewMockControlPins(ctrl)).
			WithStatus(radio.NewMockLinkStatus(ctrl)).
			WithPairingCode("4711").
			WithPeerCapacity(16).
			WithModeDelays(5*time.Millisecond, 20*time.Millisecond, 2*time.Millisecond).
			Build()
		if err != nil {
			t.Fatalf("unexpected error from Build(): %v", err)
		}

		if config.PairingCode != "4711" {
			t.Errorf("pairing code: got %q, want 4711", config.PairingCode)
		}
		if config.PeerCapacity != 16 {
			t.Errorf("peer capacity: got %d, want 16", config.PeerCapacity)
		}
		if config.PinSettle != 5*time.Millisecond || config.BootSettle != 20*time.Millisecond || config.CommandGap != 2*time.Millisecond {
			t.Errorf("mode delays: got %v/%v/%v", config.PinSettle, config.BootSettle, config.CommandGap)
		}
	})
}
