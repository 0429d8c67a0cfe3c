// Package nibtrie implements a nibble trie: an associative container that
// branches on the 4-bit halves of each key byte and stores one payload per
// distinct key.
//
// Keys are decomposed into bytes by a pluggable Accessor, so the same engine
// serves string keys, integer keys or any custom encoding. Each key byte
// costs two 16-way hops:
//
//	          high nibble           low nibble
//	byteNode ------------> layer[16] ----------> byteNode ---> (next byte)
//
// A byteNode marks one fully resolved byte of the key path. It holds the
// payload slot for keys ending there (the occupied flag tells a stored
// payload apart from a node that only routes deeper) and the 16-way array
// of nibble layers for the next key byte.
//
// Nodes are allocated lazily on Insert and reclaimed eagerly: Delete prunes
// every node that no longer routes to a stored payload, so after removing
// all keys the trie holds zero nodes. Slot occupancy per node is a 16-bit
// bitmap; child counts are derived from it with popcount and therefore can
// not drift from the actual slots.
//
// Lookups take O(key length) regardless of how many keys are stored, and
// there is no hashing, so there are no collisions to probe past.
//
// The engine itself is not safe for concurrent use. Config.Synchronized
// selects a variant that serializes every operation behind one mutex.
package nibtrie
