package hugearr


//============================================= HugeArr Operations


// Exists
//	Reports whether a key holds any value, including NULL.
func (arrInst *HugeArr) Exists(key any) (bool, error) {
	keyBytes, keyErr := normalizeKey(key)
	if keyErr != nil { return false, keyErr }

	if arrInst.filterMiss(keyBytes) { return false, nil }

	nodeOffset, found, locateErr := arrInst.locate(keyBytes, false)
	if locateErr != nil { return false, locateErr }
	if ! found { return false, nil }

	node, readErr := arrInst.readNode(nodeOffset)
	if readErr != nil { return false, readErr }
	defer arrInst.nodePool.putNode(node)

	return node.Tag != TagUnset, nil
}

// OffsetExists
//	Reports whether a key holds a value other than NULL, mirroring the sql style "is null" convention where a present NULL counts as absent.
func (arrInst *HugeArr) OffsetExists(key any) (bool, error) {
	keyBytes, keyErr := normalizeKey(key)
	if keyErr != nil { return false, keyErr }

	if arrInst.filterMiss(keyBytes) { return false, nil }

	nodeOffset, found, locateErr := arrInst.locate(keyBytes, false)
	if locateErr != nil { return false, locateErr }
	if ! found { return false, nil }

	node, readErr := arrInst.readNode(nodeOffset)
	if readErr != nil { return false, readErr }
	defer arrInst.nodePool.putNode(node)

	return node.Tag != TagUnset && node.Tag != TagNull, nil
}

// Get
//	Reads the value stored for a key.
//	An absent key returns found false and emits a notice through the injected logger, it is not an error.
func (arrInst *HugeArr) Get(key any) (any, bool, error) {
	keyBytes, keyErr := normalizeKey(key)
	if keyErr != nil { return nil, false, keyErr }

	if arrInst.filterMiss(keyBytes) {
		arrInst.logger.Warn("get on unset key", "key", string(keyBytes))
		return nil, false, nil
	}

	nodeOffset, found, locateErr := arrInst.locate(keyBytes, false)
	if locateErr != nil { return nil, false, locateErr }

	if found {
		value, isSet, readErr := arrInst.readValueAt(nodeOffset)
		if readErr != nil { return nil, false, readErr }
		if isSet { return value, true, nil }
	}

	arrInst.logger.Warn("get on unset key", "key", string(keyBytes))
	return nil, false, nil
}

// TryGet
//	Reads the value stored for a key, silently returning the provided default when the key is absent.
func (arrInst *HugeArr) TryGet(key any, defaultValue any) (any, error) {
	keyBytes, keyErr := normalizeKey(key)
	if keyErr != nil { return nil, keyErr }

	if arrInst.filterMiss(keyBytes) { return defaultValue, nil }

	nodeOffset, found, locateErr := arrInst.locate(keyBytes, false)
	if locateErr != nil { return nil, locateErr }
	if ! found { return defaultValue, nil }

	value, isSet, readErr := arrInst.readValueAt(nodeOffset)
	if readErr != nil { return nil, readErr }
	if ! isSet { return defaultValue, nil }

	return value, nil
}

// Set
//	Stores a value for a key, creating the trie path to it on demand.
func (arrInst *HugeArr) Set(key any, value any) error {
	keyBytes, keyErr := normalizeKey(key)
	if keyErr != nil { return keyErr }

	nodeOffset, _, locateErr := arrInst.locate(keyBytes, true)
	if locateErr != nil { return locateErr }

	writeErr := arrInst.writeTypedValue(nodeOffset, value, false)
	if writeErr != nil { return writeErr }

	arrInst.filterAdd(keyBytes)
	return nil
}

// Unset
//	Marks a key unset if it currently holds a value. The node keeps its block pointer so a later set can reuse the latent capacity.
func (arrInst *HugeArr) Unset(key any) error {
	keyBytes, keyErr := normalizeKey(key)
	if keyErr != nil { return keyErr }

	nodeOffset, found, locateErr := arrInst.locate(keyBytes, false)
	if locateErr != nil { return locateErr }
	if ! found { return nil }

	return arrInst.writeTypedValue(nodeOffset, nil, true)
}

// Update
//	Reads the current state of a key, hands it to the callback and applies the returned mutation descriptor.
//	With create false an absent key leaves the callback uninvoked, with create true the path is extended first.
//	A nil descriptor fails with ErrBadUpdateResponse, a descriptor with Exists false unsets the key.
func (arrInst *HugeArr) Update(key any, fn UpdateFunc, create bool) error {
	keyBytes, keyErr := normalizeKey(key)
	if keyErr != nil { return keyErr }

	nodeOffset, found, locateErr := arrInst.locate(keyBytes, create)
	if locateErr != nil { return locateErr }
	if ! found { return nil }

	value, isSet, readErr := arrInst.readValueAt(nodeOffset)
	if readErr != nil { return readErr }

	result := fn(isSet, value)
	if result == nil { return ErrBadUpdateResponse }

	if ! result.Exists { return arrInst.writeTypedValue(nodeOffset, nil, true) }

	writeErr := arrInst.writeTypedValue(nodeOffset, result.Value, false)
	if writeErr != nil { return writeErr }

	arrInst.filterAdd(keyBytes)
	return nil
}

// Clear
//	Resets the container to its freshly initialized state: header with a zero counter, a single empty root node and nothing else.
//	The implicit cursor is reset to the new root and the membership filter starts over.
func (arrInst *HugeArr) Clear() error {
	truncateErr := arrInst.file.Truncate(0)
	if truncateErr != nil { return truncateErr }

	buf := make([]byte, InitFileSize)
	copy(buf, serializeHeader(0))

	_, writeErr := arrInst.file.WriteAt(buf, 0)
	if writeErr != nil { return writeErr }

	flushErr := arrInst.flush()
	if flushErr != nil { return flushErr }

	arrInst.fileEnd = InitFileSize
	arrInst.itemCount = 0
	arrInst.resetCursor()
	arrInst.resetFilter()

	return nil
}

// Count
//	The number of keys currently holding a value, the in memory mirror of header bytes 8..11.
func (arrInst *HugeArr) Count() uint32 {
	return arrInst.itemCount
}
