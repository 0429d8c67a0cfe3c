package nibtrie

// Delete unwinds through a three-outcome protocol: each recursion level
// tells its caller whether the key ended right here (deleteEnd), whether
// the nibble layer it worked in became empty and must be detached one
// level up (deleteContinue), or whether something still alive halted the
// pruning for good (deleteStop).
type deleteStatus int8

const (
	deleteEnd deleteStatus = iota
	deleteContinue
	deleteStop
)

// deleteNode clears the payload at key's terminal node below node and
// prunes the emptied part of the path while unwinding. The returned byte
// is the key byte this level consumed; on deleteContinue the caller uses
// its high nibble to detach the emptied layer from its own slot array.
//
// A node survives the unwind whenever it still has children or still holds
// a payload of its own: pruning must never drop a shared prefix or a
// shorter key that terminates mid-path.
func (t *Trie[K, V]) deleteNode(node *byteNode[V], key K, index int) (deleteStatus, byte) {
	b, ok := t.acc(key, index)
	if !ok {
		return deleteEnd, 0
	}

	var (
		hi = highNibble(b)
		lo = lowNibble(b)
	)

	layer := node.nibbles[hi]
	if layer == nil {
		return deleteStop, b // key absent, nothing to do
	}

	child := layer.nodes[lo]
	if child == nil {
		return deleteStop, b
	}

	status, childByte := t.deleteNode(child, key, index+1)

	switch status {
	case deleteStop:
		return deleteStop, b

	case deleteEnd:
		// child is the key's terminal node
		if !child.occupied {
			return deleteStop, b // key absent: a longer key routes through here
		}

		if t.dealloc != nil {
			t.dealloc(child.data)
		}

		var zero V
		child.data = zero
		child.occupied = false
		t.size--

		if child.children() > 0 {
			return deleteStop, b // still guards deeper keys
		}

	case deleteContinue:
		// the layer below child emptied out
		child.detach(highNibble(childByte))

		if child.children() > 0 || child.occupied {
			return deleteStop, b
		}
	}

	layer.detach(lo)

	if layer.children() > 0 {
		return deleteStop, b
	}

	return deleteContinue, b
}
