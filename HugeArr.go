package hugearr

import "os"
import "path/filepath"

import "github.com/bits-and-blooms/bloom/v3"
import "github.com/ethereum/go-ethereum/log"
import "github.com/pkg/errors"
import "github.com/sirgallo/utils"


//============================================= HugeArr


// Open initializes the HugeArr
//	With an empty Filepath and FileName a private temporary file backs the container and is removed on close.
//	An existing non empty file must begin with a valid header, an empty or freshly created file is initialized through Clear.
//	The fileEnd watermark is set to the file length and the item counter is loaded from the header.
func Open(opts HugeArrOpts) (*HugeArr, error) {
	arrInst := &HugeArr{
		serializer: opts.Serializer,
		logger: opts.Logger,
		filterSize: opts.FilterSize,
		nodePool: newHugeArrNodePool(),
	}

	if arrInst.serializer == nil { arrInst.serializer = GobSerializer{} }
	if arrInst.logger == nil { arrInst.logger = log.Root() }

	var openFileErr error

	if opts.Filepath == "" && opts.FileName == "" {
		arrInst.file, openFileErr = os.CreateTemp("", "hugearr-*.arr")
		if openFileErr != nil { return nil, errors.Wrapf(ErrCannotOpenFile, "temp file: %v", openFileErr) }

		arrInst.isTemp = true
	} else {
		fileWithFilePath := filepath.Join(opts.Filepath, opts.FileName)

		arrInst.file, openFileErr = os.OpenFile(fileWithFilePath, os.O_RDWR | os.O_CREATE, 0600)
		if openFileErr != nil { return nil, errors.Wrapf(ErrCannotOpenFile, "%s: %v", fileWithFilePath, openFileErr) }

		if ! opts.NoLock {
			lockErr := arrInst.lockFile()
			if lockErr != nil {
				arrInst.file.Close()
				return nil, lockErr
			}
		}
	}

	arrInst.filepath = arrInst.file.Name()
	arrInst.opened = true

	if opts.FilterSize > 0 { arrInst.filter = bloom.NewWithEstimates(opts.FilterSize, FilterFalsePositiveRate) }

	initFileErr := arrInst.initializeFile()
	if initFileErr != nil {
		arrInst.unlockFile()
		arrInst.file.Close()
		return nil, initFileErr
	}

	return arrInst, nil
}

// Close
//	Flush and release the backing file handle.
//	A temp backed container removes its file, a user provided file is reset to world accessible mode as documented behavior.
func (arrInst *HugeArr) Close() error {
	if ! arrInst.opened { return nil }
	arrInst.opened = false

	flushErr := arrInst.flush()
	if flushErr != nil { return flushErr }

	arrInst.unlockFile()

	closeErr := arrInst.file.Close()
	if closeErr != nil { return closeErr }

	if arrInst.isTemp {
		removeErr := os.Remove(arrInst.filepath)
		if removeErr != nil { return removeErr }
	} else {
		chmodErr := os.Chmod(arrInst.filepath, 0o777)
		if chmodErr != nil { arrInst.logger.Warn("resetting file mode on close failed", "err", chmodErr) }
	}

	arrInst.filepath = utils.GetZero[string]()
	return nil
}

// FileSize
//	Determine the backing file size. Equals the fileEnd watermark at every quiescent point.
func (arrInst *HugeArr) FileSize() (int64, error) {
	stat, statErr := arrInst.file.Stat()
	if statErr != nil { return 0, statErr }

	return stat.Size(), nil
}

// Remove
//	Close the HugeArr and remove the backing file.
func (arrInst *HugeArr) Remove() error {
	path := arrInst.filepath
	isTemp := arrInst.isTemp

	closeErr := arrInst.Close()
	if closeErr != nil { return closeErr }

	if isTemp { return nil }
	return os.Remove(path)
}

// initializeFile
//	Validates or initializes the backing file.
//	A zero length file gets the header and the empty root written through Clear, anything else must parse as a live file.
//	When the membership filter is enabled it is rebuilt from the persisted trie.
func (arrInst *HugeArr) initializeFile() error {
	stat, statErr := arrInst.file.Stat()
	if statErr != nil { return errors.Wrapf(ErrCannotOpenFile, "stat: %v", statErr) }

	arrInst.resetCursor()

	switch {
		case stat.Size() == 0:
			clearErr := arrInst.Clear()
			if clearErr != nil { return clearErr }
		default:
			readMetaErr := arrInst.readMeta(stat.Size())
			if readMetaErr != nil { return readMetaErr }

			rebuildErr := arrInst.rebuildFilter()
			if rebuildErr != nil { return rebuildErr }
	}

	return nil
}
