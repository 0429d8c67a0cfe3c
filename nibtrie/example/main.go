package main

import (
	"fmt"

	"github.com/laumbourassa/gnt/nibtrie"
)

func main() {
	tr := nibtrie.NewString[int]()

	tr.Insert("a", 1)
	tr.Insert("ab", 2)
	tr.Insert("abc", 3)
	tr.Insert("b", 4)

	fmt.Printf("keys=%d nodes=%d\n", tr.Len(), tr.NodeCount())

	tr.Delete("ab")

	for _, key := range []string{"a", "ab", "abc", "b"} {
		if val, ok := tr.Search(key); ok {
			fmt.Printf("%-3s -> %d\n", key, val)
		} else {
			fmt.Printf("%-3s -> (not found)\n", key)
		}
	}

	fmt.Printf("keys=%d nodes=%d\n", tr.Len(), tr.NodeCount())

	// integer keys share byte prefixes too: 256 and 257 both route
	// through the node for their leading 0x01 byte
	nums, _ := nibtrie.New(nibtrie.Config[uint64, string]{
		Accessor: nibtrie.Uint64Accessor,
	})

	nums.Insert(1, "A")
	nums.Insert(256, "B")
	nums.Insert(257, "C")
	nums.Delete(1)

	for _, key := range []uint64{1, 256, 257} {
		val, ok := nums.Search(key)
		fmt.Printf("%3d -> %q ok=%v\n", key, val, ok)
	}
}
