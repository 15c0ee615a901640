package radio

// DefaultPeerCapacity bounds the discovered-peer table. The inquiry mode
// caps a single scan at five results; the headroom absorbs results carried
// across the already-initialized resume path.
const DefaultPeerCapacity = 8

// DiscoveredPeer is one inquiry result in discovery order.
type DiscoveredPeer struct {
	Address string // normalized comma-delimited token
	Name    string // empty until resolved
}

// PeerTable is a bounded, ordered collection of inquiry results.
//
// Insertion order is discovery order. Adjacent duplicate addresses are kept
// at insertion and skipped during confirmation traversal instead. Once the
// table is full the oldest discovery is silently dropped; the bound is an
// explicit policy, not an array-bounds accident.
type PeerTable struct {
	capacity int
	peers    []DiscoveredPeer
}

// NewPeerTable returns an empty table holding at most capacity peers.
// A non-positive capacity falls back to DefaultPeerCapacity.
func NewPeerTable(capacity int) *PeerTable {
	if capacity <= 0 {
		capacity = DefaultPeerCapacity
	}
	return &PeerTable{capacity: capacity}
}

// Add appends a discovery, dropping the oldest entry when full.
func (t *PeerTable) Add(address string) {
	if len(t.peers) == t.capacity {
		copy(t.peers, t.peers[1:])
		t.peers = t.peers[:len(t.peers)-1]
	}
	t.peers = append(t.peers, DiscoveredPeer{Address: address})
}

// Len reports the number of stored peers.
func (t *PeerTable) Len() int {
	return len(t.peers)
}

// At returns the peer at index i in discovery order.
func (t *PeerTable) At(i int) DiscoveredPeer {
	return t.peers[i]
}

// SetName records the resolved name of the peer at index i.
func (t *PeerTable) SetName(i int, name string) {
	t.peers[i].Name = name
}

// NextDistinct returns the first index after i holding a different address,
// skipping adjacent duplicates, or Len() when the table is exhausted.
func (t *PeerTable) NextDistinct(i int) int {
	j := i + 1
	for j < len(t.peers) && t.peers[j].Address == t.peers[i].Address {
		j++
	}
	return j
}

// Reset drops all stored peers.
func (t *PeerTable) Reset() {
	t.peers = t.peers[:0]
}
