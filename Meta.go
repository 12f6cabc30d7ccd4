package hugearr

import "bytes"
import "encoding/binary"

import "github.com/pkg/errors"


//============================================= HugeArr Metadata


// readMeta
//	Parses and validates the 12 byte header of a non empty backing file and loads the item counter.
//	A file is live iff it is empty, handled by the caller, or begins with a valid header.
func (arrInst *HugeArr) readMeta(fileSize int64) error {
	if fileSize >= int64(MaxFileSize) { return errors.Wrap(ErrIncompatibleVersion, "file exceeds 32 bit pointer range") }
	if fileSize < InitFileSize { return ErrTruncated }

	buf := make([]byte, HeaderSize)
	readErr := arrInst.readAt(buf, 0)
	if readErr != nil { return readErr }

	if ! bytes.Equal(buf[HeaderMagicIdx:HeaderMagicIdx + len(MagicString)], []byte(MagicString)) { return ErrNotAHugeArray }

	version := binary.LittleEndian.Uint32(buf[HeaderVersionIdx:HeaderVersionIdx + PtrSize])
	if version != FormatVersion { return errors.Wrapf(ErrIncompatibleVersion, "found version %d", version) }

	arrInst.itemCount = binary.LittleEndian.Uint32(buf[HeaderCountIdx:HeaderCountIdx + PtrSize])
	arrInst.fileEnd = uint32(fileSize)

	return nil
}

// writeItemCount
//	Persists the in memory item counter into header bytes 8..11.
func (arrInst *HugeArr) writeItemCount() error {
	return arrInst.writeUint32At(HeaderCountIdx, arrInst.itemCount)
}

// incrementItemCount
//	Bumps and persists the counter when a node transitions from UNSET to a set tag.
func (arrInst *HugeArr) incrementItemCount() error {
	arrInst.itemCount++
	return arrInst.writeItemCount()
}

// decrementItemCount
//	Drops and persists the counter when a node transitions from a set tag to UNSET.
func (arrInst *HugeArr) decrementItemCount() error {
	arrInst.itemCount--
	return arrInst.writeItemCount()
}
