package collections

import "golang.org/x/exp/maps"

type hashMap[K comparable, V any] struct {
	entries  map[K]V
	capacity int
}

func NewHashMap[K comparable, V any](capacity int) Map[K, V] {
	return newHashMap[K, V](capacity)
}

func newHashMap[K comparable, V any](capacity int) *hashMap[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &hashMap[K, V]{
		entries:  make(map[K]V, capacity),
		capacity: capacity,
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if forced {
		m.entries[k] = v
		return nil
	}
	if m.Contains(k) {
		return ErrKeyExisted
	}
	m.entries[k] = v
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Keys() []K {
	return maps.Keys(m.entries)
}

func (m *hashMap[K, V]) Values() []V {
	return maps.Values(m.entries)
}

func (m *hashMap[K, V]) Each(f func(k K, v V)) {
	for k, v := range m.entries {
		f(k, v)
	}
}

// Clear empties the map. Without keepCapacity the entries are reallocated at
// the initial capacity.
func (m *hashMap[K, V]) Clear(keepCapacity bool) {
	if keepCapacity {
		maps.Clear(m.entries)
		return
	}
	m.entries = make(map[K]V, m.capacity)
}

func (m *hashMap[K, V]) Clone() Map[K, V] {
	return &hashMap[K, V]{
		entries:  maps.Clone(m.entries),
		capacity: m.capacity,
	}
}

func (m *hashMap[K, V]) ToMap() map[K]V {
	return maps.Clone(m.entries)
}
