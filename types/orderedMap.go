package types

// OrderedMap remembers the order in which keys were first set.
type OrderedMap[K comparable, V any] struct {
	kv   map[K]V
	keys List[K]
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		kv: make(map[K]V),
	}
}

func (m *OrderedMap[K, V]) Get(key K) (value V, ok bool) {
	value, ok = m.kv[key]
	return
}

// Set stores value under key and reports whether the key is new.
// Overwriting keeps the key's original position.
func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	_, alreadyExist := m.kv[key]
	m.kv[key] = value
	if alreadyExist {
		return false
	}

	m.keys.Append(key)
	return true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.kv)
}

func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys.Values()
}

func (m *OrderedMap[K, V]) Delete(key K) (didDelete bool) {
	_, ok := m.kv[key]
	if ok {
		m.keys.Remove(key)
		delete(m.kv, key)
	}

	return ok
}
