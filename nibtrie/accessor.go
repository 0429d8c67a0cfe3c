package nibtrie

// Accessor yields the byte of key at index, for successive indices
// 0, 1, 2, … It reports false once the key's byte sequence is exhausted.
// For a given key the sequence must be deterministic and end at a fixed
// length; the accessor, not the trie, defines what a key's bytes are.
type Accessor[K any] func(key K, index int) (byte, bool)

// Deallocator releases a payload that is being superseded or removed.
// It runs when Insert overwrites an existing key, when Delete removes one,
// and once per stored payload on Destroy.
type Deallocator[V any] func(data V)

// StringAccessor yields the bytes of a string key in order.
func StringAccessor(key string, index int) (byte, bool) {
	if index >= len(key) {
		return 0, false
	}
	return key[index], true
}

// BytesAccessor yields the bytes of a byte-slice key in order.
func BytesAccessor(key []byte, index int) (byte, bool) {
	if index >= len(key) {
		return 0, false
	}
	return key[index], true
}

// Uint64Accessor decomposes key into base-256 bytes, most significant
// first, with no leading zero bytes. Key 0 yields the single byte 0.
func Uint64Accessor(key uint64, index int) (byte, bool) {
	digits := 1
	for tmp := key >> 8; tmp > 0; tmp >>= 8 {
		digits++
	}

	if index >= digits {
		return 0, false
	}

	return byte(key >> (8 * (digits - index - 1))), true
}

// DecimalAccessor decomposes key into decimal digits, most significant
// first. Every yielded byte is a digit value in [0,9], so keys spread over
// at most ten of the 256 possible slots per level; it trades density for
// digit-aligned paths. Key 0 yields the single digit 0.
func DecimalAccessor(key uint64, index int) (byte, bool) {
	digits := 1
	for tmp := key / 10; tmp > 0; tmp /= 10 {
		digits++
	}

	if index >= digits {
		return 0, false
	}

	for i := 0; i < digits-index-1; i++ {
		key /= 10
	}

	return byte(key % 10), true
}
