package hugearr

import "bytes"
import "encoding/binary"
import "encoding/gob"
import "reflect"

import "github.com/pkg/errors"


//============================================= HugeArr Serialization


// Serializer is the external value codec.
//	Encode must be an injective mapping from supported values to byte strings, Decode consumes exactly the encoded bytes.
//	A non deterministic encoder is tolerated but defeats the in-place block reuse optimization.
type Serializer interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// gobValue wraps a value so gob can carry the dynamic type through a single interface field.
type gobValue struct {
	V any
}

// GobSerializer is the default value codec, backed by encoding/gob.
//	Concrete value kinds stored through the interface must be registered, the common kinds are registered below.
//	Custom kinds require a gob.Register call by the caller or a custom Serializer.
type GobSerializer struct{}

func init() {
	// gob registers the basic kinds and their slices itself, registering them again is harmless; []any and map[string]any are not covered
	gob.Register(int8(0))
	gob.Register(int16(0))
	gob.Register(int32(0))
	gob.Register(int64(0))
	gob.Register(uint8(0))
	gob.Register(uint16(0))
	gob.Register(uint32(0))
	gob.Register(uint64(0))
	gob.Register(float32(0))
	gob.Register([]any(nil))
	gob.Register([]string(nil))
	gob.Register([]int(nil))
	gob.Register(map[string]any(nil))
}

// Encode
//	Serializes a value to its byte string form.
func (gs GobSerializer) Encode(value any) ([]byte, error) {
	var buf bytes.Buffer

	encodeErr := gob.NewEncoder(&buf).Encode(&gobValue{ V: value })
	if encodeErr != nil { return nil, errors.Wrap(encodeErr, "gob encode") }

	return buf.Bytes(), nil
}

// Decode
//	Deserializes a byte string produced by Encode.
func (gs GobSerializer) Decode(data []byte) (any, error) {
	var wrapped gobValue

	decodeErr := gob.NewDecoder(bytes.NewReader(data)).Decode(&wrapped)
	if decodeErr != nil { return nil, errors.Wrap(decodeErr, "gob decode") }

	return wrapped.V, nil
}

// valueTag
//	Maps a value to its tag by strict identity style discrimination.
//	A non zero number is never ZERO and a non empty string is never EMPTY_STRING.
//	Float zero is not integer zero and falls through to the serializer.
func valueTag(value any) uint8 {
	if value == nil { return TagNull }

	switch v := value.(type) {
		case bool:
			if v { return TagTrue }
			return TagFalse
		case int:
			if v == 0 { return TagZero }
		case int8:
			if v == 0 { return TagZero }
		case int16:
			if v == 0 { return TagZero }
		case int32:
			if v == 0 { return TagZero }
		case int64:
			if v == 0 { return TagZero }
		case uint:
			if v == 0 { return TagZero }
		case uint8:
			if v == 0 { return TagZero }
		case uint16:
			if v == 0 { return TagZero }
		case uint32:
			if v == 0 { return TagZero }
		case uint64:
			if v == 0 { return TagZero }
		case string:
			if v == "" { return TagEmptyString }
		case []byte:
			if len(v) == 0 { return TagEmptyString }
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if rv.Len() == 0 { return TagEmptyArray }
	}

	return TagSerialized
}

// canonicalValue
//	Returns the semantic value fixed by a singleton tag alone, or false for UNSET and SERIALIZED.
func canonicalValue(tag uint8) (any, bool) {
	switch tag {
		case TagNull:
			return nil, true
		case TagFalse:
			return false, true
		case TagTrue:
			return true, true
		case TagZero:
			return 0, true
		case TagEmptyString:
			return "", true
		case TagEmptyArray:
			return []any{}, true
		default:
			return nil, false
	}
}

// serializeNode
//	Serializes a node record into a NodeSize frame.
func serializeNode(node *HugeArrNode, buf []byte) []byte {
	buf = buf[:NodeSize]
	buf[NodeTagIdx] = node.Tag
	binary.LittleEndian.PutUint32(buf[NodeValuePtrIdx:NodeValuePtrIdx + PtrSize], node.ValuePtr)
	binary.LittleEndian.PutUint32(buf[NodeChild0Idx:NodeChild0Idx + PtrSize], node.Child0)
	binary.LittleEndian.PutUint32(buf[NodeChild1Idx:NodeChild1Idx + PtrSize], node.Child1)

	return buf
}

// deserializeNode
//	Fills a node record from a NodeSize frame.
func deserializeNode(buf []byte, node *HugeArrNode) error {
	if len(buf) < NodeSize { return errors.Wrap(ErrTruncated, "short node frame") }

	node.Tag = buf[NodeTagIdx]
	node.ValuePtr = binary.LittleEndian.Uint32(buf[NodeValuePtrIdx:NodeValuePtrIdx + PtrSize])
	node.Child0 = binary.LittleEndian.Uint32(buf[NodeChild0Idx:NodeChild0Idx + PtrSize])
	node.Child1 = binary.LittleEndian.Uint32(buf[NodeChild1Idx:NodeChild1Idx + PtrSize])

	return nil
}

// serializeHeader
//	Serializes the 12 byte file header with the given item count.
func serializeHeader(itemCount uint32) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[HeaderMagicIdx:HeaderMagicIdx + len(MagicString)], MagicString)
	binary.LittleEndian.PutUint32(buf[HeaderVersionIdx:HeaderVersionIdx + PtrSize], FormatVersion)
	binary.LittleEndian.PutUint32(buf[HeaderCountIdx:HeaderCountIdx + PtrSize], itemCount)

	return buf
}
