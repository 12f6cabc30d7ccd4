package hugearr

import "encoding/binary"


//============================================= HugeArr Value Blocks


// readBlockPayload
//	Reads the used length word of a value block and then its payload bytes.
func (arrInst *HugeArr) readBlockPayload(blockPtr uint32) ([]byte, error) {
	used, readErr := arrInst.readUint32At(blockPtr + BlockUsedIdx)
	if readErr != nil { return nil, readErr }

	payload := make([]byte, used)
	readErr = arrInst.readAt(payload, blockPtr + BlockHeaderSize)
	if readErr != nil { return nil, readErr }

	return payload, nil
}

// decodeValue
//	Maps a tag and block pointer back to the stored value.
//	Singleton tags fix the value on their own, SERIALIZED goes through the block and the injected serializer.
func (arrInst *HugeArr) decodeValue(tag uint8, blockPtr uint32) (any, error) {
	if value, isSingleton := canonicalValue(tag); isSingleton { return value, nil }

	payload, readErr := arrInst.readBlockPayload(blockPtr)
	if readErr != nil { return nil, readErr }

	return arrInst.serializer.Decode(payload)
}

// readValueAt
//	Reads the typed payload of the node at the given offset. The second return reports whether the node holds a value at all.
func (arrInst *HugeArr) readValueAt(nodeOffset uint32) (any, bool, error) {
	node, readErr := arrInst.readNode(nodeOffset)
	if readErr != nil { return nil, false, readErr }
	defer arrInst.nodePool.putNode(node)

	if node.Tag == TagUnset { return nil, false, nil }

	value, decodeErr := arrInst.decodeValue(node.Tag, node.ValuePtr)
	if decodeErr != nil { return nil, false, decodeErr }

	return value, true, nil
}

// writeTypedValue
//	The mutation protocol keeping the node, its value block and the header counter consistent.
//	The node header is read first so writing an equal singleton value is a pure no-op, which is why set reads before writing.
//	A serialized payload reuses the existing block in place whenever its capacity fits the new encoding,
//	otherwise a fresh block is appended and the old one is abandoned, capacity leaked by design.
//	The node record itself is rewritten minimally: tag byte only, pointer word only, or both.
//	With unset true the node is marked UNSET but keeps its block pointer, so a later set on the same key reuses the latent capacity.
func (arrInst *HugeArr) writeTypedValue(nodeOffset uint32, value any, unset bool) error {
	node, readErr := arrInst.readNode(nodeOffset)
	if readErr != nil { return readErr }
	defer arrInst.nodePool.putNode(node)

	oldTag := node.Tag
	oldPtr := node.ValuePtr

	newTag := TagUnset
	if ! unset { newTag = valueTag(value) }
	newPtr := oldPtr

	if oldTag == newTag && newTag != TagUnset && newTag != TagSerialized { return nil }

	if newTag == TagSerialized {
		payload, encodeErr := arrInst.serializer.Encode(value)
		if encodeErr != nil { return encodeErr }

		var capacity uint32
		if oldPtr != 0 {
			var capErr error
			capacity, capErr = arrInst.readUint32At(oldPtr + BlockCapacityIdx)
			if capErr != nil { return capErr }
		}

		length := uint32(len(payload))

		if capacity >= length {
			buf := make([]byte, PtrSize + len(payload))
			binary.LittleEndian.PutUint32(buf[:PtrSize], length)
			copy(buf[PtrSize:], payload)

			writeErr := arrInst.writeAt(buf, oldPtr + BlockUsedIdx)
			if writeErr != nil { return writeErr }
		} else {
			buf := make([]byte, BlockHeaderSize + len(payload))
			binary.LittleEndian.PutUint32(buf[BlockCapacityIdx:BlockCapacityIdx + PtrSize], length)
			binary.LittleEndian.PutUint32(buf[BlockUsedIdx:BlockUsedIdx + PtrSize], length)
			copy(buf[BlockHeaderSize:], payload)

			allocated, appendErr := arrInst.appendBytes(buf)
			if appendErr != nil { return appendErr }

			newPtr = allocated
		}
	}

	tagChanged := newTag != oldTag
	ptrChanged := newPtr != oldPtr

	switch {
		case tagChanged && ptrChanged:
			buf := arrInst.nodePool.getBuf()[:1 + PtrSize]
			buf[0] = newTag
			binary.LittleEndian.PutUint32(buf[1:], newPtr)

			writeErr := arrInst.writeAt(buf, nodeOffset)
			arrInst.nodePool.putBuf(buf)
			if writeErr != nil { return writeErr }
		case tagChanged:
			writeErr := arrInst.writeAt([]byte{ newTag }, nodeOffset + NodeTagIdx)
			if writeErr != nil { return writeErr }
		case ptrChanged:
			writeErr := arrInst.writeUint32At(nodeOffset + NodeValuePtrIdx, newPtr)
			if writeErr != nil { return writeErr }
	}

	if oldTag == TagUnset && newTag != TagUnset {
		countErr := arrInst.incrementItemCount()
		if countErr != nil { return countErr }
	} else if oldTag != TagUnset && newTag == TagUnset {
		countErr := arrInst.decrementItemCount()
		if countErr != nil { return countErr }
	}

	return arrInst.flush()
}
