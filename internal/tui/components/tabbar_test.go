package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabIdxByKey(t *testing.T) {
	cases := []struct {
		key  rune
		want int
	}{
		{'o', 0},
		{'r', 1},
		{'c', 2},
		{'p', 3},
		{'f', 4},
		{'s', 5},
		{'x', -1},
	}
	for _, c := range cases {
		if got := TabIdxByKey(c.key); got != c.want {
			t.Fatalf("TabIdxByKey(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}

func TestTabVisualWidth_MatchesRenderedBar(t *testing.T) {
	for active := range Tabs {
		want := 1 // leading space
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
			if i < len(Tabs)-1 {
				want += 2 // separator
			}
		}

		got := lipgloss.Width(RenderTabBar(active, 120))
		if got != want {
			t.Fatalf("active=%d: rendered width = %d, hitbox width sum = %d", active, got, want)
		}
	}
}
