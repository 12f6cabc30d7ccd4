package hugearr

import "github.com/bits-and-blooms/bitset"


//============================================= HugeArr Iterate


// nodeVisit receives the reconstructed key plus the raw tag and block pointer of every set, byte aligned node.
type nodeVisit = func(key []byte, tag uint8, valuePtr uint32) error

// Walk
//	Visits every set key-value pair depth first, which yields bit lexicographic key order since the trie is indexed one bit at a time.
//	Values are decoded through the injected serializer as they are visited. Returning an error from fn stops the walk.
func (arrInst *HugeArr) Walk(fn WalkFunc) error {
	return arrInst.walkNodes(RootNodeOffset, bitset.New(8), 0, func(key []byte, tag uint8, valuePtr uint32) error {
		value, decodeErr := arrInst.decodeValue(tag, valuePtr)
		if decodeErr != nil { return decodeErr }

		return fn(key, value)
	})
}

// walkNodes
//	The recursive walk underneath Walk and the filter rebuild.
//	Keys are byte strings, so only nodes at byte aligned depths can hold one. Set nodes elsewhere are unreachable by any key and skipped.
func (arrInst *HugeArr) walkNodes(offset uint32, path *bitset.BitSet, depth uint, visit nodeVisit) error {
	node, readErr := arrInst.readNode(offset)
	if readErr != nil { return readErr }

	tag := node.Tag
	valuePtr := node.ValuePtr
	child0 := node.Child0
	child1 := node.Child1
	arrInst.nodePool.putNode(node)

	if tag != TagUnset && depth % 8 == 0 {
		visitErr := visit(bitsToKey(path, depth), tag, valuePtr)
		if visitErr != nil { return visitErr }
	}

	if child0 != 0 {
		path.SetTo(depth, false)
		walkErr := arrInst.walkNodes(child0, path, depth + 1, visit)
		if walkErr != nil { return walkErr }
	}

	if child1 != 0 {
		path.SetTo(depth, true)
		walkErr := arrInst.walkNodes(child1, path, depth + 1, visit)
		if walkErr != nil { return walkErr }
	}

	return nil
}
