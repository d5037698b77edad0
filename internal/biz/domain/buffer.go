package domain

// RollingBuffer holds the most recent kept messages of a session.
// When full, appending evicts the oldest message.
type RollingBuffer struct {
	capacity int
	items    []*ClassifiedMessage
}

// NewRollingBuffer creates a buffer holding at most capacity messages
func NewRollingBuffer(capacity int) *RollingBuffer {
	if capacity <= 0 {
		capacity = 100
	}
	return &RollingBuffer{capacity: capacity}
}

// Append adds a message, evicting the oldest when at capacity
func (b *RollingBuffer) Append(msg *ClassifiedMessage) {
	if len(b.items) == b.capacity {
		copy(b.items, b.items[1:])
		b.items[len(b.items)-1] = msg
		return
	}
	b.items = append(b.items, msg)
}

// Snapshot returns a copy of the buffered messages, oldest first
func (b *RollingBuffer) Snapshot() []*ClassifiedMessage {
	out := make([]*ClassifiedMessage, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of buffered messages
func (b *RollingBuffer) Len() int {
	return len(b.items)
}

// Cap returns the buffer capacity
func (b *RollingBuffer) Cap() int {
	return b.capacity
}

// Clear empties the buffer
func (b *RollingBuffer) Clear() {
	b.items = nil
}

// TickerSet is the set of tickers discovered in a session via explicit $SYMBOL mentions
type TickerSet struct {
	symbols map[string]struct{}
}

// NewTickerSet creates an empty set
func NewTickerSet() *TickerSet {
	return &TickerSet{symbols: make(map[string]struct{})}
}

// Add records a symbol
func (s *TickerSet) Add(symbol string) {
	if s.symbols == nil {
		s.symbols = make(map[string]struct{})
	}
	s.symbols[symbol] = struct{}{}
}

// Contains reports whether the symbol was discovered
func (s *TickerSet) Contains(symbol string) bool {
	if s == nil {
		return false
	}
	_, ok := s.symbols[symbol]
	return ok
}

// Len returns the number of discovered symbols
func (s *TickerSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.symbols)
}
