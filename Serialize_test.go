package hugearr

import "reflect"
import "testing"


func TestValueTagDiscrimination(t *testing.T) {
	cases := []struct {
		value any
		expected uint8
	}{
		{ nil, TagNull },
		{ false, TagFalse },
		{ true, TagTrue },
		{ 0, TagZero },
		{ int64(0), TagZero },
		{ uint8(0), TagZero },
		{ "", TagEmptyString },
		{ []byte{}, TagEmptyString },
		{ []any{}, TagEmptyArray },
		{ []int{}, TagEmptyArray },
		{ 1, TagSerialized },
		{ -1, TagSerialized },
		{ 0.0, TagSerialized },
		{ "x", TagSerialized },
		{ []byte{ 0 }, TagSerialized },
		{ []any{ nil }, TagSerialized },
		{ map[string]any{}, TagSerialized },
	}

	for _, tc := range cases {
		if tag := valueTag(tc.value); tag != tc.expected {
			t.Errorf("tag mismatch for %v (%T): actual(%d), expected(%d)", tc.value, tc.value, tag, tc.expected)
		}
	}
}

func TestCanonicalValues(t *testing.T) {
	cases := []struct {
		tag uint8
		expected any
	}{
		{ TagNull, nil },
		{ TagFalse, false },
		{ TagTrue, true },
		{ TagZero, 0 },
		{ TagEmptyString, "" },
		{ TagEmptyArray, []any{} },
	}

	for _, tc := range cases {
		value, isSingleton := canonicalValue(tc.tag)
		if ! isSingleton { t.Fatalf("expected tag %d to be a singleton", tc.tag) }

		if ! reflect.DeepEqual(value, tc.expected) {
			t.Errorf("canonical value mismatch for tag %d: actual(%v), expected(%v)", tc.tag, value, tc.expected)
		}
	}

	for _, tag := range []uint8{ TagUnset, TagSerialized } {
		_, isSingleton := canonicalValue(tag)
		if isSingleton { t.Errorf("tag %d should not be a singleton", tag) }
	}
}

func TestGobSerializerRoundTrip(t *testing.T) {
	serializer := GobSerializer{}

	values := []any{ 123, -45, "text", []byte{ 1, 2, 3 }, 3.25, []any{ 1, "two" }, map[string]any{ "k": 1 }, []string{ "a", "b" } }

	for _, value := range values {
		encoded, encodeErr := serializer.Encode(value)
		if encodeErr != nil { t.Fatalf("error encoding %v: %s", value, encodeErr.Error()) }

		decoded, decodeErr := serializer.Decode(encoded)
		if decodeErr != nil { t.Fatalf("error decoding %v: %s", value, decodeErr.Error()) }

		if ! reflect.DeepEqual(decoded, value) {
			t.Errorf("round trip mismatch: actual(%v), expected(%v)", decoded, value)
		}
	}

	t.Run("Test Encoding Is Deterministic", func(t *testing.T) {
		first, _ := serializer.Encode([]any{ 1, "two", 3.0 })
		second, _ := serializer.Encode([]any{ 1, "two", 3.0 })

		if ! reflect.DeepEqual(first, second) { t.Error("equal values should encode to equal bytes") }
	})

	t.Run("Test Node Frame Round Trip", func(t *testing.T) {
		node := &HugeArrNode{ Tag: TagSerialized, ValuePtr: 1234, Child0: 25, Child1: 0 }

		buf := make([]byte, NodeSize)
		serializeNode(node, buf)

		decoded := &HugeArrNode{}
		decodeErr := deserializeNode(buf, decoded)
		if decodeErr != nil { t.Fatalf("error deserializing node: %s", decodeErr.Error()) }

		if *decoded != *node { t.Errorf("node frame mismatch: actual(%+v), expected(%+v)", decoded, node) }
	})
}
