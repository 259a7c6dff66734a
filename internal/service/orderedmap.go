package service

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func NewClassResults() *ClassResults {
	return orderedmap.New[string, []ResultRecord]()
}

func NewFormatResults() *FormatResults {
	return orderedmap.New[string, *ClassResults]()
}

func NewStateChampions() *StateChampions {
	return orderedmap.New[string, []ChampionRecord]()
}

// Keys returns the keys of m, oldest first.
func Keys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	keys := make([]string, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// GetOrInsert returns the value under key, inserting newFn() first if absent.
func GetOrInsert[V any](m *orderedmap.OrderedMap[string, V], key string, newFn func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := newFn()
	m.Set(key, v)
	return v
}

// Append adds items to the list under key, creating an empty list if absent.
func Append[T any](m *orderedmap.OrderedMap[string, []T], key string, items ...T) {
	cur, ok := m.Get(key)
	if !ok {
		cur = make([]T, 0, len(items))
	}
	m.Set(key, append(cur, items...))
}
