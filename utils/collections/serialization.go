package collections

import (
	"bytes"
	"encoding/json"
)

var nullBytes = []byte("null")

// MarshalJSON encodes the pairs as a JSON object keyed by K.
func (m *hashBiMap[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.forward.ToMap())
}

// UnmarshalJSON replaces the contents of m with the decoded object. The
// object must be bijective, otherwise m is left untouched.
func (m *hashBiMap[K, V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullBytes) {
		return nil
	}
	var forward map[K]V
	if err := json.Unmarshal(data, &forward); err != nil {
		return err
	}
	decoded := newHashBiMap[K, V](&options{capacity: len(forward), logger: m.log})
	for k, v := range forward {
		k, v := k, v
		if err := decoded.set(&k, &v, strict); err != nil {
			return err
		}
	}
	m.forward = decoded.forward
	m.backward = decoded.backward
	return nil
}
