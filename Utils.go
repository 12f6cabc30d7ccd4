package hugearr

import "fmt"

import "github.com/bits-and-blooms/bitset"


//============================================= HugeArr Utilities


// PrintChildren
//	Debugging function for printing every set key-value pair in the trie.
func (arrInst *HugeArr) PrintChildren() error {
	totalCount := 0

	walkErr := arrInst.Walk(func(key []byte, value any) error {
		fmt.Printf("%q: %v\n", key, value)
		totalCount++
		return nil
	})
	if walkErr != nil { return walkErr }

	fmt.Println("total count of elements:", totalCount)
	return nil
}

// bitsToKey
//	Packs the first depth bits of a descent path back into key bytes, MSB first within each byte.
func bitsToKey(path *bitset.BitSet, depth uint) []byte {
	key := make([]byte, depth / 8)

	for idx := uint(0); idx < depth; idx++ {
		if path.Test(idx) { key[idx / 8] |= 1 << (7 - idx % 8) }
	}

	return key
}
