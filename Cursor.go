package hugearr

import "github.com/bits-and-blooms/bitset"
import "github.com/pkg/errors"


//============================================= HugeArr Cursor


// resetCursor
//	Points the implicit cursor back at the root and clears the ancestor stack and descent path.
func (arrInst *HugeArr) resetCursor() {
	arrInst.cursor.currentNode = RootNodeOffset
	arrInst.cursor.ancestors = arrInst.cursor.ancestors[:0]
	arrInst.cursor.path = bitset.New(8)
	arrInst.cursor.depth = 0
}

// SeekReset
//	Resets the cursor to the root node. Always succeeds.
func (arrInst *HugeArr) SeekReset() {
	arrInst.resetCursor()
}

// SeekToNext
//	Descends the cursor along the given bit. Returns false when no child exists in that direction.
//	Mutations through the map operations never move or free nodes, so a parked cursor stays valid across them.
func (arrInst *HugeArr) SeekToNext(bit byte) (bool, error) {
	if bit > 1 { return false, errors.Wrapf(ErrInvalidKey, "bit must be 0 or 1, got %d", bit) }

	child, readErr := arrInst.readUint32At(childSlot(arrInst.cursor.currentNode, bit))
	if readErr != nil { return false, readErr }
	if child == 0 { return false, nil }

	arrInst.cursor.ancestors = append(arrInst.cursor.ancestors, arrInst.cursor.currentNode)
	arrInst.cursor.path.SetTo(arrInst.cursor.depth, bit == 1)
	arrInst.cursor.depth++
	arrInst.cursor.currentNode = child

	return true, nil
}

// SeekBack
//	Ascends the cursor to its parent. Returns false when the cursor already sits at the root.
func (arrInst *HugeArr) SeekBack() bool {
	stackLen := len(arrInst.cursor.ancestors)
	if stackLen == 0 { return false }

	arrInst.cursor.currentNode = arrInst.cursor.ancestors[stackLen - 1]
	arrInst.cursor.ancestors = arrInst.cursor.ancestors[:stackLen - 1]
	arrInst.cursor.depth--

	return true
}

// CurrentValueInfo
//	Reads the tag and value block pointer of the node under the cursor.
func (arrInst *HugeArr) CurrentValueInfo() (uint8, uint32, error) {
	node, readErr := arrInst.readNode(arrInst.cursor.currentNode)
	if readErr != nil { return 0, 0, readErr }
	defer arrInst.nodePool.putNode(node)

	return node.Tag, node.ValuePtr, nil
}

// CurrentValue
//	Reads the typed payload of the node under the cursor. The second return reports whether the node holds a value.
func (arrInst *HugeArr) CurrentValue() (any, bool, error) {
	return arrInst.readValueAt(arrInst.cursor.currentNode)
}

// CurrentKey
//	Reconstructs the key bytes addressing the node under the cursor from the recorded descent bits.
//	Only byte aligned depths form a key, anything else returns false.
func (arrInst *HugeArr) CurrentKey() ([]byte, bool) {
	if arrInst.cursor.depth % 8 != 0 { return nil, false }
	return bitsToKey(arrInst.cursor.path, arrInst.cursor.depth), true
}
