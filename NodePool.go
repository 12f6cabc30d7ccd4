package hugearr

import "sync"


//============================================= HugeArr Node Pool


// HugeArrNodePool contains recycled node records and scratch buffers so hot read paths do not allocate on every operation.
type HugeArrNodePool struct {
	// nodePool: recycled HugeArrNode records
	nodePool *sync.Pool
	// bufPool: recycled NodeSize scratch buffers for reads and small writes
	bufPool *sync.Pool
}

// newHugeArrNodePool
//	Creates the pools backing node reads. Buffers are sized to a full node record, the largest fixed frame in the format.
func newHugeArrNodePool() *HugeArrNodePool {
	np := &HugeArrNodePool{}

	np.nodePool = &sync.Pool{
		New: func() any {
			return &HugeArrNode{}
		},
	}

	np.bufPool = &sync.Pool{
		New: func() any {
			buf := make([]byte, NodeSize)
			return &buf
		},
	}

	return np
}

// getNode
//	Takes a zeroed node record from the pool.
func (np *HugeArrNodePool) getNode() *HugeArrNode {
	return np.nodePool.Get().(*HugeArrNode)
}

// putNode
//	Resets a node record and returns it to the pool.
func (np *HugeArrNodePool) putNode(node *HugeArrNode) {
	node.Tag = TagUnset
	node.ValuePtr = 0
	node.Child0 = 0
	node.Child1 = 0

	np.nodePool.Put(node)
}

// getBuf
//	Takes a NodeSize scratch buffer from the pool. Callers slice it down to the frame they need.
func (np *HugeArrNodePool) getBuf() []byte {
	return *np.bufPool.Get().(*[]byte)
}

// putBuf
//	Returns a scratch buffer to the pool at its full capacity.
func (np *HugeArrNodePool) putBuf(buf []byte) {
	full := buf[:cap(buf)]
	np.bufPool.Put(&full)
}
