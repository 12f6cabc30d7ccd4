package hugearr_test

import "crypto/rand"
import "testing"

import "github.com/sirgallo/hugearr"


type KeyVal struct {
	Key []byte
	Value []byte
}

func openTestArr(t *testing.T, opts hugearr.HugeArrOpts) *hugearr.HugeArr {
	t.Helper()

	arr, openErr := hugearr.Open(opts)
	if openErr != nil { t.Fatalf("error on hugearr open: %s", openErr.Error()) }

	return arr
}

func openTempArr(t *testing.T) *hugearr.HugeArr {
	t.Helper()
	return openTestArr(t, hugearr.HugeArrOpts{})
}

func mustFileSize(t *testing.T, arr *hugearr.HugeArr) int64 {
	t.Helper()

	size, sizeErr := arr.FileSize()
	if sizeErr != nil { t.Fatalf("error on file size: %s", sizeErr.Error()) }

	return size
}

func mustSet(t *testing.T, arr *hugearr.HugeArr, key any, value any) {
	t.Helper()

	setErr := arr.Set(key, value)
	if setErr != nil { t.Fatalf("error on hugearr set: %s", setErr.Error()) }
}

func mustGet(t *testing.T, arr *hugearr.HugeArr, key any) any {
	t.Helper()

	value, found, getErr := arr.Get(key)
	if getErr != nil { t.Fatalf("error on hugearr get: %s", getErr.Error()) }
	if ! found { t.Fatalf("expected key to be set: %v", key) }

	return value
}

func encodedLen(t *testing.T, value any) int64 {
	t.Helper()

	payload, encodeErr := hugearr.GobSerializer{}.Encode(value)
	if encodeErr != nil { t.Fatalf("error encoding value: %s", encodeErr.Error()) }

	return int64(len(payload))
}

func GenerateRandomBytes(length int) ([]byte, error) {
	randomBytes := make([]byte, length)
	_, err := rand.Read(randomBytes)
	if err != nil { return nil, err }

	for i := 0; i < length; i++ {
		randomBytes[i] = 'a' + (randomBytes[i] % 26)
	}

	return randomBytes, nil
}
