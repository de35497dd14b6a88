package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/source"
)

func TestGeneratorPullsValuesLazily(t *testing.T) {
	g := source.Generate(func(yield source.Yield[int]) {
		yield(1)
		yield(2)
		yield(3)
	})
	defer g.Close()

	var got []int
	for c := g.First(); !g.IsLast(c); g.Inc(&c) {
		got = append(got, g.ReadAt(c))
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestGeneratorCloseBeforeDraining(t *testing.T) {
	g := source.Generate(func(yield source.Yield[int]) {
		for i := 0; ; i++ {
			yield(i)
		}
	})
	c := g.First()
	require.Equal(t, 0, g.ReadAt(c))
	g.Close()
	g.Close() // idempotent
}

func TestForeignFromSlice(t *testing.T) {
	f := source.FromSlice([]int{5, 6, 7})
	var got []int
	for c := f.First(); !f.IsLast(c); f.Inc(&c) {
		got = append(got, f.ReadAt(c))
	}
	require.Equal(t, []int{5, 6, 7}, got)
}

func TestStreamValuesReadsWhitespaceSeparated(t *testing.T) {
	s := source.NewStreamValues[int](strings.NewReader("1 2 3"))
	var got []int
	for c := s.First(); !s.IsLast(c); s.Inc(&c) {
		got = append(got, s.ReadAt(c))
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestStreamBytesReadsEachByte(t *testing.T) {
	s := source.NewStreamBytes(strings.NewReader("ab"))
	c := s.First()
	require.Equal(t, byte('a'), s.ReadAt(c))
	s.Inc(&c)
	require.Equal(t, byte('b'), s.ReadAt(c))
	s.Inc(&c)
	require.True(t, s.IsLast(c))
}
