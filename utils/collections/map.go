package collections

import "encoding/json"

type Map[K comparable, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
	Each(f func(k K, v V))
	Clear(keepCapacity bool)
	Clone() Map[K, V]
	ToMap() map[K]V
}

// BiMap is a one-to-one mapping between keys and values, with constant time
// lookup in both directions. It is not safe for concurrent use.
//
// Set keeps the key and moves it to the new value, failing with
// ErrValueExisted when the value already belongs to another key. SetByValue
// is the mirror image and fails with ErrKeyExisted. Insert accepts only
// unused keys and values. AssignValue and AssignKey delete the pair when
// given a nil partner.
type BiMap[K comparable, V comparable] interface {
	json.Marshaler
	json.Unmarshaler

	GetValue(key K) (V, bool)
	GetKey(value V) (K, bool)
	ContainsKey(key K) bool
	ContainsValue(value V) bool

	Set(key K, value V) error
	MustSet(key K, value V)
	SetByValue(value V, key K) error
	Insert(key K, value V) error
	AssignValue(key K, value *V) error
	AssignKey(value V, key *K) error
	DeleteKey(key K) (V, bool)
	DeleteValue(value V) (K, bool)
	Clear(keepCapacity bool)

	Size() int
	IsEmpty() bool
	Keys() []K
	Values() []V
	Pairs() []Pair[K, V]
	Each(f func(key K, value V))
	Equal(other BiMap[K, V]) bool
	Clone() BiMap[K, V]
	ToMap() map[K]V
	String() string
}

type Pair[K any, V any] struct {
	Key   K
	Value V
}
