package components

import (
	"strings"
	"testing"

	"github.com/finplanhq/finplan/internal/engine"
)

func TestRunwayBar_CapsDisplayedRunway(t *testing.T) {
	cases := []struct {
		months int
		want   string
	}{
		{18, "18mo"},
		{250, "100+"},
		{engine.RunwayInfinite, "100+"},
	}
	for _, c := range cases {
		bar := RunwayBar("Runway", c.months, 24, 10, 20)
		if !strings.Contains(bar, c.want) {
			t.Fatalf("RunwayBar(%d months) does not show %q", c.months, c.want)
		}
	}
}
