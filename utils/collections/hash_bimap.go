package collections

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

type setMode int

const (
	// keyed keeps the key and lets it move to a new value.
	keyed setMode = iota
	// valued keeps the value and lets it move to a new key.
	valued
	// strict only adds pairs whose key and value are both unused.
	strict
)

type hashBiMap[K comparable, V comparable] struct {
	forward  Map[K, V]
	backward Map[V, K]
	log      *log.Entry
}

func NewHashBiMap[K comparable, V comparable](opts ...Option) BiMap[K, V] {
	return newHashBiMap[K, V](newOptions(opts))
}

func newHashBiMap[K comparable, V comparable](o *options) *hashBiMap[K, V] {
	return &hashBiMap[K, V]{
		forward:  newHashMap[K, V](o.capacity),
		backward: newHashMap[V, K](o.capacity),
		log:      o.logger,
	}
}

// FromMap builds a BiMap holding the pairs of src. It fails with
// ErrValueExisted if src maps two keys to the same value.
func FromMap[K comparable, V comparable](src map[K]V, opts ...Option) (BiMap[K, V], error) {
	o := newOptions(opts)
	if o.capacity < len(src) {
		o.capacity = len(src)
	}
	m := newHashBiMap[K, V](o)
	for k, v := range src {
		k, v := k, v
		if err := m.set(&k, &v, strict); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// FromPairs builds a BiMap from a literal sequence of pairs. Every key and
// every value must appear exactly once.
func FromPairs[K comparable, V comparable](pairs []Pair[K, V], opts ...Option) (BiMap[K, V], error) {
	o := newOptions(opts)
	if o.capacity < len(pairs) {
		o.capacity = len(pairs)
	}
	m := newHashBiMap[K, V](o)
	for i := range pairs {
		if err := m.set(&pairs[i].Key, &pairs[i].Value, strict); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func MustFromMap[K comparable, V comparable](src map[K]V, opts ...Option) BiMap[K, V] {
	m, err := FromMap(src, opts...)
	must(err)
	return m
}

func MustFromPairs[K comparable, V comparable](pairs []Pair[K, V], opts ...Option) BiMap[K, V] {
	m, err := FromPairs(pairs, opts...)
	must(err)
	return m
}

// Invert returns a copy of m with keys and values swapped.
func Invert[K comparable, V comparable](m BiMap[K, V]) BiMap[V, K] {
	o := newOptions(nil)
	o.capacity = m.Size()
	inverted := newHashBiMap[V, K](o)
	if hm, ok := m.(*hashBiMap[K, V]); ok {
		inverted.log = hm.log
	}
	m.Each(func(k K, v V) {
		must(inverted.set(&v, &k, strict))
	})
	return inverted
}

// set writes pairs into forward and backward, and removeKey/removeValue drop
// both halves of a pair. Clear and UnmarshalJSON only ever empty or replace
// the two containers together. A nil key or value stands for "absent" and
// turns the call into a removal by the other side. On error nothing has been
// modified.
func (m *hashBiMap[K, V]) set(key *K, value *V, mode setMode) error {
	switch {
	case key == nil && value == nil:
		return nil
	case value == nil:
		m.removeKey(*key)
		return nil
	case key == nil:
		m.removeValue(*value)
		return nil
	}
	k, v := *key, *value
	curV, keyUsed := m.GetValue(k)
	curK, valueUsed := m.GetKey(v)
	switch mode {
	case strict:
		if keyUsed {
			return m.reject(ErrKeyExisted, k, v, curV)
		}
		if valueUsed {
			return m.reject(ErrValueExisted, k, v, curK)
		}
	case keyed:
		if valueUsed && curK != k {
			return m.reject(ErrValueExisted, k, v, curK)
		}
		if keyUsed {
			_ = m.backward.Delete(curV)
		}
	case valued:
		if keyUsed && curV != v {
			return m.reject(ErrKeyExisted, k, v, curV)
		}
		if valueUsed {
			_ = m.forward.Delete(curK)
		}
	}
	_ = m.forward.Put(k, v, true)
	_ = m.backward.Put(v, k, true)
	return nil
}

func (m *hashBiMap[K, V]) reject(kind error, k K, v V, partner any) error {
	m.log.WithFields(log.Fields{
		"key":     k,
		"value":   v,
		"partner": partner,
	}).Debug("rejected conflicting pair")
	if kind == ErrKeyExisted {
		return fmt.Errorf("%w: key %v is paired with value %v", kind, k, partner)
	}
	return fmt.Errorf("%w: value %v is paired with key %v", kind, v, partner)
}

func (m *hashBiMap[K, V]) removeKey(k K) (V, bool) {
	v, ok := m.GetValue(k)
	if !ok {
		return v, false
	}
	_ = m.forward.Delete(k)
	_ = m.backward.Delete(v)
	return v, true
}

func (m *hashBiMap[K, V]) removeValue(v V) (K, bool) {
	k, ok := m.GetKey(v)
	if !ok {
		return k, false
	}
	_ = m.forward.Delete(k)
	_ = m.backward.Delete(v)
	return k, true
}

func (m *hashBiMap[K, V]) GetValue(key K) (V, bool) {
	v, err := m.forward.Get(key)
	return v, err == nil
}

func (m *hashBiMap[K, V]) GetKey(value V) (K, bool) {
	k, err := m.backward.Get(value)
	return k, err == nil
}

func (m *hashBiMap[K, V]) ContainsKey(key K) bool {
	return m.forward.Contains(key)
}

func (m *hashBiMap[K, V]) ContainsValue(value V) bool {
	return m.backward.Contains(value)
}

func (m *hashBiMap[K, V]) Set(key K, value V) error {
	return m.set(&key, &value, keyed)
}

func (m *hashBiMap[K, V]) MustSet(key K, value V) {
	must(m.Set(key, value))
}

func (m *hashBiMap[K, V]) SetByValue(value V, key K) error {
	return m.set(&key, &value, valued)
}

func (m *hashBiMap[K, V]) Insert(key K, value V) error {
	return m.set(&key, &value, strict)
}

func (m *hashBiMap[K, V]) AssignValue(key K, value *V) error {
	return m.set(&key, value, keyed)
}

func (m *hashBiMap[K, V]) AssignKey(value V, key *K) error {
	return m.set(key, &value, valued)
}

func (m *hashBiMap[K, V]) DeleteKey(key K) (V, bool) {
	return m.removeKey(key)
}

func (m *hashBiMap[K, V]) DeleteValue(value V) (K, bool) {
	return m.removeValue(value)
}

func (m *hashBiMap[K, V]) Clear(keepCapacity bool) {
	m.log.WithFields(log.Fields{
		"size":          m.Size(),
		"keep_capacity": keepCapacity,
	}).Trace("clearing")
	m.forward.Clear(keepCapacity)
	m.backward.Clear(keepCapacity)
}

func (m *hashBiMap[K, V]) Size() int {
	return m.forward.Size()
}

func (m *hashBiMap[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

func (m *hashBiMap[K, V]) Keys() []K {
	return m.forward.Keys()
}

func (m *hashBiMap[K, V]) Values() []V {
	return m.backward.Keys()
}

func (m *hashBiMap[K, V]) Pairs() []Pair[K, V] {
	arr := make([]Pair[K, V], 0, m.Size())
	m.forward.Each(func(k K, v V) {
		arr = append(arr, Pair[K, V]{Key: k, Value: v})
	})
	return arr
}

func (m *hashBiMap[K, V]) Each(f func(key K, value V)) {
	m.forward.Each(f)
}

// Equal reports whether both maps hold the same set of pairs.
func (m *hashBiMap[K, V]) Equal(other BiMap[K, V]) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*hashBiMap[K, V]); ok && o == nil {
		return false
	}
	if m.Size() != other.Size() {
		return false
	}
	equal := true
	m.forward.Each(func(k K, v V) {
		if ov, ok := other.GetValue(k); !ok || ov != v {
			equal = false
		}
	})
	return equal
}

func (m *hashBiMap[K, V]) Clone() BiMap[K, V] {
	return &hashBiMap[K, V]{
		forward:  m.forward.Clone(),
		backward: m.backward.Clone(),
		log:      m.log,
	}
}

func (m *hashBiMap[K, V]) ToMap() map[K]V {
	return m.forward.ToMap()
}

func (m *hashBiMap[K, V]) String() string {
	return fmt.Sprintf("Bi%v", m.forward.ToMap())
}
