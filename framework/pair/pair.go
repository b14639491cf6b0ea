// Package pair provides a two-slot generic tuple with structural equality,
// ordering and a hash.
package pair

import (
	"cmp"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Pair holds two values.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Of builds a Pair.
func Of[T1, T2 any](first T1, second T2) Pair[T1, T2] {
	return Pair[T1, T2]{First: first, Second: second}
}

// Unpack returns both slots.
//
//	key, entry := p.Unpack()
func (p Pair[T1, T2]) Unpack() (T1, T2) {
	return p.First, p.Second
}

// String renders the pair as "(first, second)".
func (p Pair[T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Equal reports slot-wise equality.
func Equal[T1, T2 comparable](a, b Pair[T1, T2]) bool {
	return a.First == b.First && a.Second == b.Second
}

// Compare orders pairs by First, then by Second.
func Compare[T1, T2 cmp.Ordered](a, b Pair[T1, T2]) int {
	if c := cmp.Compare(a.First, b.First); c != 0 {
		return c
	}
	return cmp.Compare(a.Second, b.Second)
}

// Hash combines the hashes of both slots. Equal pairs hash equally within a
// process. A slot implementing fmt.Stringer, such as container.Key, hashes
// its String(); other slots hash their %#v form, which for pointers, funcs
// and chans includes an address, so only Stringer and plain value slots hash
// the same across processes.
func Hash[T1, T2 comparable](p Pair[T1, T2]) uint64 {
	return combine(slotHash(p.First), slotHash(p.Second))
}

func slotHash(v any) uint64 {
	if s, ok := v.(fmt.Stringer); ok {
		return xxhash.Sum64String(fmt.Sprint(s))
	}
	return xxhash.Sum64String(fmt.Sprintf("%#v", v))
}

func combine(h1, h2 uint64) uint64 {
	return ((h1 << 5) + h1) ^ h2
}
