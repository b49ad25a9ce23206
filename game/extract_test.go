package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run("labels separated same-id regions as distinct instances", func(t *testing.T) {
		g := NewGrid(5, 5)
		// Two horizontal 2-tile ships of id 1, one vertical 3-tile of id 2.
		g.Set(0, 0, 1)
		g.Set(1, 0, 1)
		g.Set(3, 0, 1)
		g.Set(4, 0, 1)
		g.Set(0, 2, 2)
		g.Set(0, 3, 2)
		g.Set(0, 4, 2)

		instances := Extract(g)

		require.Len(t, instances, 3)
		require.Equal(t, 1, instances[0].ID)
		require.Equal(t, map[Point]struct{}{{0, 0}: {}, {1, 0}: {}}, instances[0].Coords)
		require.Equal(t, 1, instances[1].ID)
		require.Equal(t, map[Point]struct{}{{3, 0}: {}, {4, 0}: {}}, instances[1].Coords)
		require.Equal(t, 2, instances[2].ID)
		require.Len(t, instances[2].Coords, 3)
		for _, ship := range instances {
			require.Empty(t, ship.Hits, "fresh instances should have no hits")
		}
	})

	t.Run("does not join diagonal cells", func(t *testing.T) {
		g := NewGrid(3, 3)
		g.Set(0, 0, 3)
		g.Set(1, 1, 3)

		instances := Extract(g)

		require.Len(t, instances, 2, "diagonal contact is not connectivity")
	})

	t.Run("empty grid extracts no instances", func(t *testing.T) {
		require.Empty(t, Extract(NewGrid(4, 4)))
	})
}

func TestFloodFill(t *testing.T) {
	t.Run("collects a connected region through a predicate", func(t *testing.T) {
		g := NewGrid(4, 4)
		for _, p := range []Point{{1, 1}, {2, 1}, {2, 2}} {
			g.Set(p.X, p.Y, 6)
		}

		component := FloodFill(Point{2, 2},
			func(p Point) bool { return g.InBounds(p.X, p.Y) },
			func(p Point) bool { return g.At(p.X, p.Y) == 6 })

		require.ElementsMatch(t, []Point{{1, 1}, {2, 1}, {2, 2}}, component)
	})

	t.Run("returns nil when the start cell fails the predicate", func(t *testing.T) {
		g := NewGrid(2, 2)
		component := FloodFill(Point{0, 0},
			func(p Point) bool { return g.InBounds(p.X, p.Y) },
			func(p Point) bool { return g.At(p.X, p.Y) != Empty })
		require.Nil(t, component)
	})
}
