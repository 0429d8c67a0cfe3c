package nibtrie

import (
	"errors"
	"sync"
)

var (
	// ErrNilTrie is reported when an operation is invoked on a nil trie.
	ErrNilTrie = errors.New("nibtrie: nil trie")
	// ErrNilAccessor is reported by New when the config has no accessor.
	ErrNilAccessor = errors.New("nibtrie: nil accessor")
	// ErrEmptyKey is reported by Insert when the accessor yields no bytes
	// for the key; such a key has no terminal node to store a payload in.
	ErrEmptyKey = errors.New("nibtrie: key has no bytes")
)

// Config carries the per-trie strategies. Accessor is mandatory;
// Deallocator may be nil (payloads are then simply dropped); Synchronized
// selects the mutex-guarded variant, which serializes every operation on
// the trie and makes it safe for concurrent callers.
type Config[K, V any] struct {
	Accessor     Accessor[K]
	Deallocator  Deallocator[V]
	Synchronized bool
}

// Trie is a nibble trie mapping keys of type K to payloads of type V.
// The zero Trie is not usable; construct one with New or a typed
// convenience constructor.
type Trie[K, V any] struct {
	guard   sync.Locker
	acc     Accessor[K]
	dealloc Deallocator[V]
	size    int
	// root is never occupied; its nibbles array is the top level of the
	// tree, so the walk and destroy code treat every level uniformly.
	root byteNode[V]
}

// New creates a trie configured by cfg.
func New[K, V any](cfg Config[K, V]) (*Trie[K, V], error) {
	if cfg.Accessor == nil {
		return nil, ErrNilAccessor
	}

	t := &Trie[K, V]{
		guard:   nopLocker{},
		acc:     cfg.Accessor,
		dealloc: cfg.Deallocator,
	}

	if cfg.Synchronized {
		t.guard = &sync.Mutex{}
	}

	return t, nil
}

// NewString creates an unguarded trie with string keys.
func NewString[V any]() *Trie[string, V] {
	t, _ := New[string, V](Config[string, V]{Accessor: StringAccessor})
	return t
}

// NewUint64 creates an unguarded trie with uint64 keys decomposed into
// base-256 bytes. Use New with DecimalAccessor for digit-wise keys.
func NewUint64[V any]() *Trie[uint64, V] {
	t, _ := New[uint64, V](Config[uint64, V]{Accessor: Uint64Accessor})
	return t
}

// Len returns the number of keys currently stored.
func (t *Trie[K, V]) Len() int {
	if t == nil {
		return 0
	}

	t.guard.Lock()
	defer t.guard.Unlock()

	return t.size
}

// Insert associates data with key, allocating the key's path on demand.
// If the key was already present the deallocator runs on the superseded
// payload before the new one is stored.
func (t *Trie[K, V]) Insert(key K, data V) error {
	if t == nil {
		return ErrNilTrie
	}

	t.guard.Lock()
	defer t.guard.Unlock()

	var (
		node  = &t.root
		index = 0
	)

	for {
		b, ok := t.acc(key, index)
		if !ok {
			break
		}
		index++

		var (
			hi = highNibble(b)
			lo = lowNibble(b)
		)

		layer := node.nibbles[hi]
		if layer == nil {
			layer = &nibbleLayer[V]{}
			node.attach(hi, layer)
		}

		next := layer.nodes[lo]
		if next == nil {
			next = &byteNode[V]{}
			layer.attach(lo, next)
		}

		node = next
	}

	if index == 0 {
		return ErrEmptyKey
	}

	if node.occupied {
		if t.dealloc != nil {
			t.dealloc(node.data)
		}
	} else {
		t.size++
	}

	node.data = data
	node.occupied = true

	return nil
}

// Search returns the payload stored for key. The second result reports
// presence, so a stored zero payload is not mistaken for a missing key.
func (t *Trie[K, V]) Search(key K) (V, bool) {
	var zero V

	if t == nil {
		return zero, false
	}

	t.guard.Lock()
	defer t.guard.Unlock()

	var (
		node  = &t.root
		index = 0
	)

	for {
		b, ok := t.acc(key, index)
		if !ok {
			break
		}
		index++

		layer := node.nibbles[highNibble(b)]
		if layer == nil {
			return zero, false
		}

		node = layer.nodes[lowNibble(b)]
		if node == nil {
			return zero, false
		}
	}

	if index == 0 || !node.occupied {
		return zero, false
	}

	return node.data, true
}

// Contains reports whether key currently has a stored payload.
func (t *Trie[K, V]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Delete removes the payload stored for key and prunes every node the
// removal left without a purpose. Deleting an absent key is a no-op.
func (t *Trie[K, V]) Delete(key K) error {
	if t == nil {
		return ErrNilTrie
	}

	t.guard.Lock()
	defer t.guard.Unlock()

	if status, b := t.deleteNode(&t.root, key, 0); status == deleteContinue {
		t.root.detach(highNibble(b))
	}

	return nil
}

// Destroy releases every stored payload through the deallocator and
// detaches the whole node graph, leaving an empty, reusable trie.
func (t *Trie[K, V]) Destroy() error {
	if t == nil {
		return ErrNilTrie
	}

	t.guard.Lock()
	defer t.guard.Unlock()

	t.destroyNode(&t.root)
	t.size = 0

	return nil
}

func (t *Trie[K, V]) destroyNode(node *byteNode[V]) {
	for i := byte(0); node.mask != 0 && i < 16; i++ {
		if layer := node.nibbles[i]; layer != nil {
			t.destroyLayer(layer)
			node.detach(i)
		}
	}

	if node.occupied {
		if t.dealloc != nil {
			t.dealloc(node.data)
		}

		var zero V
		node.data = zero
		node.occupied = false
	}
}

func (t *Trie[K, V]) destroyLayer(layer *nibbleLayer[V]) {
	for i := byte(0); layer.mask != 0 && i < 16; i++ {
		if node := layer.nodes[i]; node != nil {
			t.destroyNode(node)
			layer.detach(i)
		}
	}
}

// NodeCount returns the number of currently allocated nibble layers and
// byte nodes. A trie that holds no keys holds no nodes, so the count is a
// direct probe for leaked or prematurely kept structure.
func (t *Trie[K, V]) NodeCount() int {
	if t == nil {
		return 0
	}

	t.guard.Lock()
	defer t.guard.Unlock()

	total := 0
	for _, layer := range t.root.nibbles {
		total += countLayer(layer)
	}

	return total
}

func countLayer[V any](layer *nibbleLayer[V]) int {
	if layer == nil {
		return 0
	}

	total := 1
	for _, node := range layer.nodes {
		if node == nil {
			continue
		}

		total++
		for _, next := range node.nibbles {
			total += countLayer(next)
		}
	}

	return total
}
