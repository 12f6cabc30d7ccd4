package hugearr

import "os"

import "github.com/bits-and-blooms/bitset"
import "github.com/bits-and-blooms/bloom/v3"
import "github.com/ethereum/go-ethereum/log"


// HugeArrOpts initialize the HugeArr
type HugeArrOpts struct {
	// Filepath: the path to the directory containing the backing file. Empty along with FileName opens a private temp file
	Filepath string
	// FileName: the name of the backing file within Filepath
	FileName string
	// Serializer: the codec used for values that do not collapse to a singleton tag. Defaults to GobSerializer
	Serializer Serializer
	// Logger: the structured logger used for diagnostics like get-on-unset-key. Defaults to log.Root()
	Logger log.Logger
	// FilterSize: estimated number of keys for the in-memory membership filter. 0 disables the filter
	FilterSize uint
	// NoLock: disable the advisory flock taken on user provided backing files
	NoLock bool
}

// HugeArrNode represents a single trie node record within the backing file.
type HugeArrNode struct {
	// Tag: the value-type discriminator for the node
	Tag uint8
	// ValuePtr: the absolute offset of the associated value block, or 0 if the node never owned one
	ValuePtr uint32
	// Child0: the absolute offset of the node reached when the next key bit is 0, or 0 if absent
	Child0 uint32
	// Child1: the absolute offset of the node reached when the next key bit is 1, or 0 if absent
	Child1 uint32
}

// arrCursor is the single implicit traversal cursor owned by a HugeArr instance.
type arrCursor struct {
	// currentNode: the absolute offset of the node the cursor currently points at
	currentNode uint32
	// ancestors: the stack of node offsets above currentNode, root first
	ancestors []uint32
	// path: the descent bits taken from the root, used to reconstruct the current key
	path *bitset.BitSet
	// depth: the number of bits descended from the root
	depth uint
}

// HugeArr contains the backing file handle and all state for operations to occur
type HugeArr struct {
	// filepath: path to the backing file
	filepath string
	// file: the backing file
	file *os.File
	// opened: flag indicating if the file is currently open
	opened bool
	// isTemp: flag indicating the backing file is a private temp file removed on close
	isTemp bool
	// locked: flag indicating an advisory flock is held on the backing file
	locked bool
	// fileEnd: the end-of-allocations watermark, equal to the file length at every quiescent point
	fileEnd uint32
	// itemCount: mirror of the header item counter, the number of nodes whose tag is not UNSET
	itemCount uint32
	// serializer: the injected value codec
	serializer Serializer
	// logger: the injected diagnostic logger
	logger log.Logger
	// filter: optional membership filter over written keys, nil when disabled
	filter *bloom.BloomFilter
	// filterSize: the estimate the filter was sized with, kept for rebuilds on clear
	filterSize uint
	// cursor: the single implicit traversal cursor
	cursor arrCursor
	// nodePool: recycled node records and scratch buffers for hot read paths
	nodePool *HugeArrNodePool
}

// WalkFunc is invoked for every set key-value pair during a depth first walk.
type WalkFunc = func(key []byte, value any) error

// UpdateResult is the mutation descriptor returned by an update callback.
type UpdateResult struct {
	// Exists: false marks the key unset, true stores Value
	Exists bool
	// Value: the new value when Exists is true
	Value any
}

// UpdateFunc receives the current state of a key and returns the mutation to apply.
//	Returning nil fails the update with ErrBadUpdateResponse.
type UpdateFunc = func(exists bool, value any) *UpdateResult

const (
	// Magic string identifying a backing file, first 4 bytes of the header
	MagicString = "HARR"
	// The on disk format version written to and expected in the header
	FormatVersion uint32 = 1
	// Total size of the file header in bytes
	HeaderSize = 12
	// Index of the magic string in the header
	HeaderMagicIdx = 0
	// Index of the format version in the header
	HeaderVersionIdx = 4
	// Index of the item counter in the header
	HeaderCountIdx = 8
	// Total size of a serialized trie node in bytes
	NodeSize = 13
	// Index of the value-type tag in a serialized node
	NodeTagIdx = 0
	// Index of the value block pointer in a serialized node
	NodeValuePtrIdx = 1
	// Index of the child 0 pointer in a serialized node
	NodeChild0Idx = 5
	// Index of the child 1 pointer in a serialized node
	NodeChild1Idx = 9
	// Absolute offset of the root node, immediately after the header
	RootNodeOffset = HeaderSize
	// File length of a freshly initialized backing file, header plus empty root
	InitFileSize = HeaderSize + NodeSize
	// Index of the capacity word in a value block
	BlockCapacityIdx = 0
	// Index of the used length word in a value block
	BlockUsedIdx = 4
	// Size of the capacity + used framing ahead of a value block payload
	BlockHeaderSize = 8
	// Size of a serialized pointer, offsets are u32
	PtrSize = 4
	// Largest file length addressable with 32 bit pointers
	MaxFileSize = uint64(1) << 32
	// Upper bound on a canonicalized key, one node per bit caps trie growth
	MaxKeySize = 1 << 24
	// False positive rate the membership filter is sized for
	FilterFalsePositiveRate = 0.01
)

const (
	// TagUnset: the node holds no value
	TagUnset uint8 = iota
	// TagNull: the nil value
	TagNull
	// TagFalse: boolean false
	TagFalse
	// TagTrue: boolean true
	TagTrue
	// TagZero: integer zero
	TagZero
	// TagEmptyString: the empty string or empty byte string
	TagEmptyString
	// TagEmptyArray: an empty ordered collection
	TagEmptyArray
	// TagSerialized: the value lives in a value block, encoded by the serializer
	TagSerialized
)

/*
	Offsets explained:

	Header:
		0 Magic "HARR" - 4 bytes
		4 Version - 4 bytes, little endian, currently 1
		8 ItemCount - 4 bytes, little endian

	Node:
		0 Tag - 1 byte
		1 ValuePtr - 4 bytes, little endian, absolute offset or 0
		5 Child0Ptr - 4 bytes, little endian, absolute offset or 0
		9 Child1Ptr - 4 bytes, little endian, absolute offset or 0

	Value Block:
		0 Capacity - 4 bytes, little endian
		4 Used - 4 bytes, little endian, Used <= Capacity
		8 Payload - Used bytes, bytes beyond Used up to Capacity are padding

	The root node lives at offset 12. All pointers are absolute byte offsets
	within the same file and 0 always means no pointer.
*/
