package domain

import "sort"

// ObjectSet is an unordered set of object identifiers visible at a single
// timestamp. Membership is what matters for scoring, so duplicates collapse
// on insert.
type ObjectSet map[int]struct{}

func NewObjectSet(ids ...int) ObjectSet {
	s := make(ObjectSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s ObjectSet) Add(id int) {
	s[id] = struct{}{}
}

func (s ObjectSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

func (s ObjectSet) Len() int {
	return len(s)
}

func (s ObjectSet) Equal(other ObjectSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Intersect returns the identifiers present in both sets.
func (s ObjectSet) Intersect(other ObjectSet) ObjectSet {
	result := make(ObjectSet)
	for id := range s {
		if other.Contains(id) {
			result.Add(id)
		}
	}
	return result
}

// Subtract returns the identifiers present in s but absent from other.
func (s ObjectSet) Subtract(other ObjectSet) ObjectSet {
	result := make(ObjectSet)
	for id := range s {
		if !other.Contains(id) {
			result.Add(id)
		}
	}
	return result
}

// Sorted returns the identifiers in ascending order.
func (s ObjectSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
