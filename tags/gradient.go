package tags

import (
	"fmt"
	"slices"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

var defaultGradient = []styled.Color{styled.RGB(0xffffff), styled.RGB(0x000000)}

// gradientTag handles <gradient>, <gradient:c1:c2...> and <gradient:c1:c2...:phase>,
// phase being in [-1, 1]. A negative phase runs the colors backwards.
func gradientTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	phase := 0.0
	var colors []styled.Color

	if args.HasNext() {
		for args.HasNext() {
			arg, _ := args.PopOr()

			// the last argument may be the phase
			if !args.HasNext() {
				if p, ok := arg.AsDouble(); ok {
					if p < -1 || p > 1 {
						return nil, fmt.Errorf("gradient phase is out of range (%v), must be in [-1, 1]", p)
					}
					phase = p
					break
				}
			}

			c, err := styled.ParseColor(arg.Value())
			if err != nil {
				return nil, err
			}
			colors = append(colors, c)
		}

		if len(colors) < 2 {
			return nil, fmt.Errorf("gradient needs at least two colors, got %d", len(colors))
		}
	}

	return newColorChanging(newGradient(phase, colors)), nil
}

type gradient struct {
	colors        []styled.Color
	phase         float64
	negativePhase bool

	factorStep float64
	index      int
	colorIndex int
}

func newGradient(phase float64, colors []styled.Color) *gradient {
	if len(colors) == 0 {
		colors = defaultGradient
	}
	colors = slices.Clone(colors)

	g := &gradient{colors: colors, phase: phase}
	if phase < 0 {
		g.negativePhase = true
		g.phase = 1 + phase
		slices.Reverse(g.colors)
	}

	return g
}

func (g *gradient) init(size int) {
	sectorLength := max(size/(len(g.colors)-1), 1)

	g.factorStep = 1 / float64(sectorLength+g.index)
	g.phase *= float64(sectorLength)
	g.index = 0
}

func (g *gradient) next() styled.Color {
	if g.factorStep*float64(g.index) > 1 {
		g.colorIndex++
		g.index = 0
	}

	factor := g.factorStep * (float64(g.index) + g.phase)
	g.index++

	// loop around
	if factor > 1 {
		factor = 1 - (factor - 1)
	}

	i := min(g.colorIndex, len(g.colors)-2)
	if g.negativePhase && len(g.colors)%2 != 0 {
		return styled.Lerp(factor, g.colors[i+1], g.colors[i])
	}
	return styled.Lerp(factor, g.colors[i], g.colors[i+1])
}

func (g *gradient) peek() styled.Color {
	cp := *g
	return cp.next()
}
