package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectSet(t *testing.T) {
	s := NewObjectSet(3, 1, 3, 2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
}

func TestObjectSet_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    ObjectSet
		b    ObjectSet
		want bool
	}{
		{
			name: "both empty",
			a:    NewObjectSet(),
			b:    NewObjectSet(),
			want: true,
		},
		{
			name: "same elements different order",
			a:    NewObjectSet(1, 4),
			b:    NewObjectSet(4, 1),
			want: true,
		},
		{
			name: "subset is not equal",
			a:    NewObjectSet(1),
			b:    NewObjectSet(1, 2),
			want: false,
		},
		{
			name: "same size different elements",
			a:    NewObjectSet(1, 2),
			b:    NewObjectSet(1, 3),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestObjectSet_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a    ObjectSet
		b    ObjectSet
		want []int
	}{
		{
			name: "overlap",
			a:    NewObjectSet(1, 2, 4),
			b:    NewObjectSet(2, 4, 7),
			want: []int{2, 4},
		},
		{
			name: "disjoint",
			a:    NewObjectSet(1, 2),
			b:    NewObjectSet(3, 4),
			want: []int{},
		},
		{
			name: "empty other",
			a:    NewObjectSet(1, 2),
			b:    NewObjectSet(),
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersect(tt.b).Sorted())
		})
	}
}

func TestObjectSet_Subtract(t *testing.T) {
	tests := []struct {
		name string
		a    ObjectSet
		b    ObjectSet
		want []int
	}{
		{
			name: "removes shared elements",
			a:    NewObjectSet(1, 2, 4),
			b:    NewObjectSet(2, 7),
			want: []int{1, 4},
		},
		{
			name: "subtracting superset leaves nothing",
			a:    NewObjectSet(1, 2),
			b:    NewObjectSet(1, 2, 3),
			want: []int{},
		},
		{
			name: "subtracting empty set keeps all",
			a:    NewObjectSet(2, 1),
			b:    NewObjectSet(),
			want: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Subtract(tt.b).Sorted())
		})
	}
}

func TestObjectSet_Sorted(t *testing.T) {
	s := NewObjectSet(9, 1, 5)

	assert.Equal(t, []int{1, 5, 9}, s.Sorted())
	assert.Equal(t, []int{}, NewObjectSet().Sorted())
}
