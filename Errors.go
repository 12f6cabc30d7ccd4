package hugearr

import "github.com/pkg/errors"


//============================================= HugeArr Errors


var (
	// ErrCannotOpenFile: acquiring the backing file handle failed
	ErrCannotOpenFile = errors.New("cannot open backing file")
	// ErrNotAHugeArray: the magic string of a non empty file did not match
	ErrNotAHugeArray = errors.New("file is not a huge array")
	// ErrIncompatibleVersion: the magic matched but the format version is unsupported
	ErrIncompatibleVersion = errors.New("incompatible huge array version")
	// ErrTruncated: the file is shorter than the header plus the root node
	ErrTruncated = errors.New("huge array file is truncated")
	// ErrInvalidKey: the key category is not supported by the key canonicalizer
	ErrInvalidKey = errors.New("invalid key")
	// ErrKeyTooLarge: the canonicalized key exceeds MaxKeySize
	ErrKeyTooLarge = errors.New("key too large")
	// ErrWriteFailure: a short write or I/O error occured during a mutation, the file was truncated back to the pre-op watermark
	ErrWriteFailure = errors.New("write failure")
	// ErrBadUpdateResponse: the update callback returned a malformed result
	ErrBadUpdateResponse = errors.New("bad update response")
)
