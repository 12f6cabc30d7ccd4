package hugearr

import "encoding/binary"

import "github.com/pkg/errors"
import "golang.org/x/sys/unix"


//============================================= HugeArr IO Utils


// readAt
//	Fills buf from the backing file at the given absolute offset.
func (arrInst *HugeArr) readAt(buf []byte, offset uint32) error {
	_, readErr := arrInst.file.ReadAt(buf, int64(offset))
	if readErr != nil { return errors.Wrapf(readErr, "read of %d bytes at offset %d", len(buf), offset) }

	return nil
}

// writeAt
//	Writes buf to the backing file at the given absolute offset. Only rewrites of already allocated regions go through here.
func (arrInst *HugeArr) writeAt(buf []byte, offset uint32) error {
	_, writeErr := arrInst.file.WriteAt(buf, int64(offset))
	if writeErr != nil { return errors.Wrapf(ErrWriteFailure, "write of %d bytes at offset %d: %v", len(buf), offset, writeErr) }

	return nil
}

// readUint32At
//	Reads a little endian u32 at the given absolute offset.
func (arrInst *HugeArr) readUint32At(offset uint32) (uint32, error) {
	buf := arrInst.nodePool.getBuf()[:PtrSize]
	defer arrInst.nodePool.putBuf(buf)

	readErr := arrInst.readAt(buf, offset)
	if readErr != nil { return 0, readErr }

	return binary.LittleEndian.Uint32(buf), nil
}

// writeUint32At
//	Writes a little endian u32 at the given absolute offset.
func (arrInst *HugeArr) writeUint32At(offset uint32, value uint32) error {
	buf := arrInst.nodePool.getBuf()[:PtrSize]
	defer arrInst.nodePool.putBuf(buf)

	binary.LittleEndian.PutUint32(buf, value)
	return arrInst.writeAt(buf, offset)
}

// appendBytes
//	Appends buf at the fileEnd watermark and advances it.
//	On a short write the file is truncated back to the pre-append watermark so the length invariant is restored.
func (arrInst *HugeArr) appendBytes(buf []byte) (uint32, error) {
	if uint64(arrInst.fileEnd) + uint64(len(buf)) > MaxFileSize {
		return 0, errors.Wrap(ErrWriteFailure, "allocation exceeds 32 bit pointer range")
	}

	offset := arrInst.fileEnd

	_, writeErr := arrInst.file.WriteAt(buf, int64(offset))
	if writeErr != nil {
		arrInst.truncateTo(offset)
		return 0, errors.Wrapf(ErrWriteFailure, "append of %d bytes at offset %d: %v", len(buf), offset, writeErr)
	}

	arrInst.fileEnd = offset + uint32(len(buf))
	return offset, nil
}

// truncateTo
//	Cuts the file back to the given watermark, discarding any partially appended bytes.
func (arrInst *HugeArr) truncateTo(end uint32) {
	truncateErr := arrInst.file.Truncate(int64(end))
	if truncateErr != nil { arrInst.logger.Error("truncate during write recovery failed", "err", truncateErr) }

	arrInst.fileEnd = end
}

// flush
//	Flushes the backing file to the OS. The flush after each mutation is the durability boundary.
func (arrInst *HugeArr) flush() error {
	flushErr := arrInst.file.Sync()
	if flushErr != nil { return errors.Wrap(flushErr, "flush") }

	return nil
}

// lockFile
//	Takes a non blocking advisory flock on the backing file.
//	The lock is a safety aid against concurrent opens, which the format does not support.
func (arrInst *HugeArr) lockFile() error {
	lockErr := unix.Flock(int(arrInst.file.Fd()), unix.LOCK_EX | unix.LOCK_NB)
	if lockErr != nil { return errors.Wrapf(ErrCannotOpenFile, "flock: %v", lockErr) }

	arrInst.locked = true
	return nil
}

// unlockFile
//	Releases the advisory flock if one is held.
func (arrInst *HugeArr) unlockFile() {
	if ! arrInst.locked { return }

	unlockErr := unix.Flock(int(arrInst.file.Fd()), unix.LOCK_UN)
	if unlockErr != nil { arrInst.logger.Warn("releasing flock failed", "err", unlockErr) }

	arrInst.locked = false
}
