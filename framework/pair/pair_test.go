package pair_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/microioc/framework/pair"
)

func TestPair_OfAndUnpack(t *testing.T) {
	p := pair.Of("db", 3)
	first, second := p.Unpack()
	assert.Equal(t, "db", first)
	assert.Equal(t, 3, second)
}

func TestPair_String(t *testing.T) {
	assert.Equal(t, "(a, 1)", pair.Of("a", 1).String())
}

func TestPair_Equal(t *testing.T) {
	assert.True(t, pair.Equal(pair.Of("a", 1), pair.Of("a", 1)))
	assert.False(t, pair.Equal(pair.Of("a", 1), pair.Of("a", 2)))
	assert.False(t, pair.Equal(pair.Of("a", 1), pair.Of("b", 1)))
}

func TestPair_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b pair.Pair[string, int]
		want int
	}{
		{"equal", pair.Of("a", 1), pair.Of("a", 1), 0},
		{"first decides", pair.Of("a", 9), pair.Of("b", 1), -1},
		{"second breaks tie", pair.Of("a", 2), pair.Of("a", 1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pair.Compare(tt.a, tt.b))
		})
	}
}

func TestPair_CompareSorts(t *testing.T) {
	ps := []pair.Pair[int, int]{pair.Of(2, 1), pair.Of(1, 2), pair.Of(1, 1)}
	slices.SortFunc(ps, pair.Compare[int, int])
	assert.Equal(t, []pair.Pair[int, int]{pair.Of(1, 1), pair.Of(1, 2), pair.Of(2, 1)}, ps)
}

func TestPair_Hash(t *testing.T) {
	assert.Equal(t, pair.Hash(pair.Of("a", 1)), pair.Hash(pair.Of("a", 1)))
	assert.NotEqual(t, pair.Hash(pair.Of("a", 1)), pair.Hash(pair.Of("a", 2)))
	assert.NotEqual(t, pair.Hash(pair.Of(1, 2)), pair.Hash(pair.Of(2, 1)), "slot order matters")
}

type tag struct{ name string }

func (t *tag) String() string { return t.name }

func TestPair_HashStringerSlot(t *testing.T) {
	a, b := &tag{name: "db"}, &tag{name: "db"}
	assert.Equal(t, pair.Hash(pair.Of(a, 1)), pair.Hash(pair.Of(b, 1)), "distinct pointers with the same String hash equally")
	assert.NotEqual(t, pair.Hash(pair.Of(a, 1)), pair.Hash(pair.Of(&tag{name: "cache"}, 1)))
}
