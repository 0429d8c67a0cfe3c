package nibtrie

import "github.com/hideo55/go-popcount"

func highNibble(b byte) byte { return b >> 4 }
func lowNibble(b byte) byte  { return b & 0x0F }

// nibbleLayer represents one resolved high nibble of a key byte. Its slots
// are indexed by the low nibble of the same byte.
type nibbleLayer[V any] struct {
	mask  uint16
	nodes [16]*byteNode[V]
}

// byteNode represents one fully resolved key byte. Its slots are indexed by
// the high nibble of the next key byte. The payload in data is only
// meaningful while occupied is set.
type byteNode[V any] struct {
	occupied bool
	mask     uint16
	data     V
	nibbles  [16]*nibbleLayer[V]
}

func (l *nibbleLayer[V]) children() int {
	return int(popcount.Count(uint64(l.mask)))
}

func (l *nibbleLayer[V]) attach(idx byte, n *byteNode[V]) {
	l.nodes[idx] = n
	l.mask |= 1 << idx
}

func (l *nibbleLayer[V]) detach(idx byte) {
	l.nodes[idx] = nil
	l.mask &^= 1 << idx
}

func (n *byteNode[V]) children() int {
	return int(popcount.Count(uint64(n.mask)))
}

func (n *byteNode[V]) attach(idx byte, l *nibbleLayer[V]) {
	n.nibbles[idx] = l
	n.mask |= 1 << idx
}

func (n *byteNode[V]) detach(idx byte) {
	n.nibbles[idx] = nil
	n.mask &^= 1 << idx
}
