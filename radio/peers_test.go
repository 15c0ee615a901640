package radio_test

import (
	"fmt"
	"testing"

	"hc05bridge/radio"
)

func TestPeerTable(t *testing.T) {
	t.Run("Insertion order is discovery order", func(t *testing.T) {
		table := radio.NewPeerTable(4)
		table.Add("AA,1,1")
		table.Add("BB,2,2")
		table.Add("CC,3,3")

		if table.Len() != 3 {
			t.Fatalf("len: got %d, want 3", table.Len())
		}
		for i, want := range []string{"AA,1,1", "BB,2,2", "CC,3,3"} {
			if got := table.At(i).Address; got != want {
				t.Errorf("peer %d: got %q, want %q", i, got, want)
			}
		}
	})

	t.Run("Never exceeds capacity, oldest dropped", func(t *testing.T) {
		table := radio.NewPeerTable(4)
		for i := 0; i < 10; i++ {
			table.Add(fmt.Sprintf("%02X,0,0", i))
		}

		if table.Len() != 4 {
			t.Fatalf("len: got %d, want capacity 4", table.Len())
		}
		// The six oldest discoveries were silently dropped.
		for i, want := range []string{"06,0,0", "07,0,0", "08,0,0", "09,0,0"} {
			if got := table.At(i).Address; got != want {
				t.Errorf("peer %d: got %q, want %q", i, got, want)
			}
		}
	})

	t.Run("Adjacent duplicates kept at insertion", func(t *testing.T) {
		table := radio.NewPeerTable(4)
		table.Add("AA,1,1")
		table.Add("AA,1,1")

		if table.Len() != 2 {
			t.Errorf("len: got %d, want 2 (no de-dup at insertion)", table.Len())
		}
	})

	t.Run("NextDistinct skips adjacent duplicates in order", func(t *testing.T) {
		table := radio.NewPeerTable(8)
		table.Add("AA,1,1")
		table.Add("AA,1,1")
		table.Add("AA,1,1")
		table.Add("BB,2,2")
		table.Add("CC,3,3")

		if got := table.NextDistinct(0); got != 3 {
			t.Errorf("NextDistinct(0): got %d, want 3", got)
		}
		if got := table.NextDistinct(3); got != 4 {
			t.Errorf("NextDistinct(3): got %d, want 4", got)
		}
	})

	t.Run("NextDistinct reports exhaustion as Len", func(t *testing.T) {
		table := radio.NewPeerTable(8)
		table.Add("AA,1,1")
		table.Add("AA,1,1")

		if got := table.NextDistinct(0); got != table.Len() {
			t.Errorf("NextDistinct(0): got %d, want %d", got, table.Len())
		}
	})

	t.Run("Default capacity on non-positive input", func(t *testing.T) {
		table := radio.NewPeerTable(0)
		for i := 0; i < 20; i++ {
			table.Add(fmt.Sprintf("%02X,0,0", i))
		}
		if table.Len() != radio.DefaultPeerCapacity {
			t.Errorf("len: got %d, want %d", table.Len(), radio.DefaultPeerCapacity)
		}
	})

	t.Run("Reset empties the table", func(t *testing.T) {
		table := radio.NewPeerTable(4)
		table.Add("AA,1,1")
		table.Reset()
		if table.Len() != 0 {
			t.Errorf("len after reset: got %d, want 0", table.Len())
		}
	})
}
