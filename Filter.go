package hugearr

import "github.com/bits-and-blooms/bitset"
import "github.com/bits-and-blooms/bloom/v3"


//============================================= HugeArr Membership Filter


// resetFilter
//	Replaces the membership filter with a fresh one sized by the configured estimate. No-op when the filter is disabled.
func (arrInst *HugeArr) resetFilter() {
	if arrInst.filterSize == 0 { return }
	arrInst.filter = bloom.NewWithEstimates(arrInst.filterSize, FilterFalsePositiveRate)
}

// rebuildFilter
//	Repopulates the filter from the trie by walking every set key. Keys are recoverable from byte aligned paths, so
//	a reopened file yields a filter over every key currently set. Keys unset before the reopen are not added back.
func (arrInst *HugeArr) rebuildFilter() error {
	if arrInst.filter == nil { return nil }

	return arrInst.walkNodes(RootNodeOffset, bitset.New(8), 0, func(key []byte, tag uint8, valuePtr uint32) error {
		arrInst.filter.Add(key)
		return nil
	})
}

// filterAdd
//	Records a written key in the filter. Unset keys are never removed, the filter only ever proves definite absence.
func (arrInst *HugeArr) filterAdd(key []byte) {
	if arrInst.filter == nil { return }
	arrInst.filter.Add(key)
}

// filterMiss
//	True when the filter proves the key was never written, letting reads skip the trie walk entirely.
func (arrInst *HugeArr) filterMiss(key []byte) bool {
	return arrInst.filter != nil && ! arrInst.filter.Test(key)
}
