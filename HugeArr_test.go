package hugearr_test

import "errors"
import "os"
import "path/filepath"
import "testing"

import "github.com/sirgallo/hugearr"


func TestHugeArrOpen(t *testing.T) {
	t.Run("Test Fresh Open With No Path", func(t *testing.T) {
		arr := openTempArr(t)
		defer arr.Close()

		if size := mustFileSize(t, arr); size != hugearr.InitFileSize {
			t.Errorf("actual file size not equal to expected: actual(%d), expected(%d)", size, hugearr.InitFileSize)
		}

		if count := arr.Count(); count != 0 { t.Errorf("expected count 0 on fresh open, got %d", count) }

		_, found, getErr := arr.Get("a")
		if getErr != nil { t.Errorf("error on hugearr get: %s", getErr.Error()) }
		if found { t.Error("expected absent key on fresh open") }
	})

	t.Run("Test Reopen Preserves Contents", func(t *testing.T) {
		dir := t.TempDir()
		opts := hugearr.HugeArrOpts{ Filepath: dir, FileName: "reopen.arr" }

		arr := openTestArr(t, opts)
		mustSet(t, arr, "alpha", 123)
		mustSet(t, arr, "beta", "value")
		mustSet(t, arr, "gamma", nil)

		closeErr := arr.Close()
		if closeErr != nil { t.Fatalf("error on hugearr close: %s", closeErr.Error()) }

		reopened := openTestArr(t, opts)
		defer reopened.Close()

		if count := reopened.Count(); count != 3 { t.Errorf("expected count 3 after reopen, got %d", count) }

		if value := mustGet(t, reopened, "alpha"); value != 123 {
			t.Errorf("actual value not equal to expected: actual(%v), expected(%v)", value, 123)
		}

		if value := mustGet(t, reopened, "beta"); value != "value" {
			t.Errorf("actual value not equal to expected: actual(%v), expected(%v)", value, "value")
		}

		if value := mustGet(t, reopened, "gamma"); value != nil {
			t.Errorf("expected nil value, got %v", value)
		}
	})

	t.Run("Test Open On Foreign File", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "foreign.arr")

		writeErr := os.WriteFile(path, []byte("this is definitely not a huge array but it is long enough"), 0600)
		if writeErr != nil { t.Fatalf("error writing foreign file: %s", writeErr.Error()) }

		_, openErr := hugearr.Open(hugearr.HugeArrOpts{ Filepath: dir, FileName: "foreign.arr" })
		if ! errors.Is(openErr, hugearr.ErrNotAHugeArray) { t.Errorf("expected ErrNotAHugeArray, got %v", openErr) }
	})

	t.Run("Test Open On Truncated File", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "short.arr")

		writeErr := os.WriteFile(path, []byte("HARR"), 0600)
		if writeErr != nil { t.Fatalf("error writing short file: %s", writeErr.Error()) }

		_, openErr := hugearr.Open(hugearr.HugeArrOpts{ Filepath: dir, FileName: "short.arr" })
		if ! errors.Is(openErr, hugearr.ErrTruncated) { t.Errorf("expected ErrTruncated, got %v", openErr) }
	})

	t.Run("Test Open On Wrong Version", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "version.arr")

		buf := make([]byte, hugearr.InitFileSize)
		copy(buf, "HARR")
		buf[hugearr.HeaderVersionIdx] = 2

		writeErr := os.WriteFile(path, buf, 0600)
		if writeErr != nil { t.Fatalf("error writing versioned file: %s", writeErr.Error()) }

		_, openErr := hugearr.Open(hugearr.HugeArrOpts{ Filepath: dir, FileName: "version.arr" })
		if ! errors.Is(openErr, hugearr.ErrIncompatibleVersion) { t.Errorf("expected ErrIncompatibleVersion, got %v", openErr) }
	})
}

func TestHugeArrClear(t *testing.T) {
	arr := openTempArr(t)
	defer arr.Close()

	mustSet(t, arr, "a", 123)
	mustSet(t, arr, "b", []any{ 1, 2, 3 })

	clearErr := arr.Clear()
	if clearErr != nil { t.Fatalf("error on hugearr clear: %s", clearErr.Error()) }

	if count := arr.Count(); count != 0 { t.Errorf("expected count 0 after clear, got %d", count) }

	if size := mustFileSize(t, arr); size != hugearr.InitFileSize {
		t.Errorf("actual file size not equal to expected: actual(%d), expected(%d)", size, hugearr.InitFileSize)
	}

	exists, existsErr := arr.Exists("a")
	if existsErr != nil { t.Errorf("error on hugearr exists: %s", existsErr.Error()) }
	if exists { t.Error("expected key to be gone after clear") }
}

func TestHugeArrWithFilter(t *testing.T) {
	dir := t.TempDir()
	opts := hugearr.HugeArrOpts{ Filepath: dir, FileName: "filtered.arr", FilterSize: 1000 }

	arr := openTestArr(t, opts)

	for idx := 0; idx < 100; idx++ {
		key, _ := GenerateRandomBytes(16)
		mustSet(t, arr, key, idx)
	}

	mustSet(t, arr, "present", true)

	closeErr := arr.Close()
	if closeErr != nil { t.Fatalf("error on hugearr close: %s", closeErr.Error()) }

	reopened := openTestArr(t, opts)
	defer reopened.Close()

	if value := mustGet(t, reopened, "present"); value != true {
		t.Errorf("actual value not equal to expected: actual(%v), expected(%v)", value, true)
	}

	exists, existsErr := reopened.Exists("never written")
	if existsErr != nil { t.Errorf("error on hugearr exists: %s", existsErr.Error()) }
	if exists { t.Error("expected filtered key to be absent") }
}
