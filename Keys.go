package hugearr

import "math"
import "strconv"

import "github.com/pkg/errors"


//============================================= HugeArr Keys


// normalizeKey
//	Canonicalize an accepted key category to its byte string form.
//	nil maps to the empty key, booleans map to the ascii digits "0" and "1", integers map to their decimal string.
//	Floats are accepted only when they are exactly integral and representable in an int64, everything else fails with ErrInvalidKey.
//	The empty key yields zero bits and therefore addresses the root node, so the empty string and a nil key collapse to the same address.
func normalizeKey(key any) ([]byte, error) {
	if key == nil { return []byte{}, nil }

	switch k := key.(type) {
		case []byte:
			if len(k) > MaxKeySize { return nil, ErrKeyTooLarge }
			return k, nil
		case string:
			if len(k) > MaxKeySize { return nil, ErrKeyTooLarge }
			return []byte(k), nil
		case bool:
			if k { return []byte("1"), nil }
			return []byte("0"), nil
		case int:
			return []byte(strconv.FormatInt(int64(k), 10)), nil
		case int8:
			return []byte(strconv.FormatInt(int64(k), 10)), nil
		case int16:
			return []byte(strconv.FormatInt(int64(k), 10)), nil
		case int32:
			return []byte(strconv.FormatInt(int64(k), 10)), nil
		case int64:
			return []byte(strconv.FormatInt(k, 10)), nil
		case uint:
			return []byte(strconv.FormatUint(uint64(k), 10)), nil
		case uint8:
			return []byte(strconv.FormatUint(uint64(k), 10)), nil
		case uint16:
			return []byte(strconv.FormatUint(uint64(k), 10)), nil
		case uint32:
			return []byte(strconv.FormatUint(uint64(k), 10)), nil
		case uint64:
			return []byte(strconv.FormatUint(k, 10)), nil
		case float32:
			return normalizeFloatKey(float64(k))
		case float64:
			return normalizeFloatKey(k)
		default:
			return nil, errors.Wrapf(ErrInvalidKey, "unsupported key category %T", key)
	}
}

// normalizeFloatKey
//	A float key is only usable when it converts to a decimal numeric string without loss.
func normalizeFloatKey(key float64) ([]byte, error) {
	if math.IsNaN(key) || math.IsInf(key, 0) { return nil, errors.Wrap(ErrInvalidKey, "non finite numeric key") }
	if key != math.Trunc(key) { return nil, errors.Wrap(ErrInvalidKey, "non integral numeric key") }
	if key < math.MinInt64 || key >= math.MaxInt64 { return nil, errors.Wrap(ErrInvalidKey, "numeric key out of exact integer range") }

	return []byte(strconv.FormatInt(int64(key), 10)), nil
}

// keyBitStream emits the bits of a canonicalized key MSB first within each byte, byte by byte from the start.
type keyBitStream struct {
	data []byte
	pos int
}

// newKeyBitStream
//	Creates a bit stream over a canonicalized key.
func newKeyBitStream(key []byte) *keyBitStream {
	return &keyBitStream{ data: key }
}

// next
//	Returns the next bit of the key and true, or false once all bits are consumed.
func (kbs *keyBitStream) next() (byte, bool) {
	if kbs.pos >= len(kbs.data) * 8 { return 0, false }

	bit := (kbs.data[kbs.pos >> 3] >> (7 - uint(kbs.pos & 7))) & 1
	kbs.pos++

	return bit, true
}
