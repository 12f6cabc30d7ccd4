package hugearr


//============================================= HugeArrNode Operations


// readNode
//	Reads the 13 byte node record at the given absolute offset into a pooled record.
//	Callers hand the record back with nodePool.putNode once done.
func (arrInst *HugeArr) readNode(offset uint32) (*HugeArrNode, error) {
	buf := arrInst.nodePool.getBuf()
	defer arrInst.nodePool.putBuf(buf)

	readErr := arrInst.readAt(buf[:NodeSize], offset)
	if readErr != nil { return nil, readErr }

	node := arrInst.nodePool.getNode()
	decodeErr := deserializeNode(buf, node)
	if decodeErr != nil {
		arrInst.nodePool.putNode(node)
		return nil, decodeErr
	}

	return node, nil
}

// appendEmptyNode
//	Allocates a fresh empty node at the fileEnd watermark. All bytes are zero, so the tag starts UNSET with no pointers.
func (arrInst *HugeArr) appendEmptyNode() (uint32, error) {
	buf := arrInst.nodePool.getBuf()
	defer arrInst.nodePool.putBuf(buf)

	for idx := range buf { buf[idx] = 0 }
	return arrInst.appendBytes(buf[:NodeSize])
}

// childSlot
//	The absolute offset of the child pointer slot selected by the next key bit.
func childSlot(nodeOffset uint32, bit byte) uint32 {
	return nodeOffset + NodeValuePtrIdx + PtrSize * (1 + uint32(bit))
}

// locate
//	Walks the trie from the root along the bits of a canonicalized key.
//	With create false the walk stops at the first absent child and reports not found.
//	With create true absent children are allocated as fresh empty nodes and linked in, extending the trie along the key path.
//	If an allocation fails part way, the link added to the last pre-existing node is cleared and the file is truncated back
//	to the watermark before the call, so no half linked nodes remain.
func (arrInst *HugeArr) locate(key []byte, create bool) (uint32, bool, error) {
	current := uint32(RootNodeOffset)
	preCallEnd := arrInst.fileEnd
	var firstLinkSlot uint32
	kbs := newKeyBitStream(key)

	for {
		bit, more := kbs.next()
		if ! more { return current, true, nil }

		slot := childSlot(current, bit)
		child, readErr := arrInst.readUint32At(slot)
		if readErr != nil { return 0, false, readErr }

		if child == 0 {
			if ! create { return 0, false, nil }

			allocated, allocErr := arrInst.appendEmptyNode()
			if allocErr != nil {
				if firstLinkSlot != 0 { arrInst.writeUint32At(firstLinkSlot, 0) }
				arrInst.truncateTo(preCallEnd)
				return 0, false, allocErr
			}

			if firstLinkSlot == 0 { firstLinkSlot = slot }

			linkErr := arrInst.writeUint32At(slot, allocated)
			if linkErr != nil {
				arrInst.writeUint32At(firstLinkSlot, 0)
				arrInst.truncateTo(preCallEnd)
				return 0, false, linkErr
			}

			child = allocated
		}

		current = child
	}
}
