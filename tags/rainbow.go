package tags

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

const rainbowReverse = "!"

// rainbowTag handles <rainbow>, <rainbow:!>, <rainbow:phase> and <rainbow:!phase>.
func rainbowTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	r := &rainbow{}

	if arg, ok := args.PopOr(); ok {
		value := arg.Value()
		if strings.HasPrefix(value, rainbowReverse) {
			r.reversed = true
			value = value[len(rainbowReverse):]
		}

		if value != "" {
			phase, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("rainbow: expected phase, got %q", value)
			}
			r.phase = phase
		}
	}

	return newColorChanging(r), nil
}

type rainbow struct {
	reversed bool
	phase    int

	frequency  float64
	colorIndex int
}

func (r *rainbow) init(size int) {
	if size > 0 {
		r.frequency = math.Pi * 2 / float64(size)
	}
	if r.reversed {
		r.colorIndex = size - 1
	}
}

func (r *rainbow) next() styled.Color {
	c := r.peek()
	if r.reversed {
		r.colorIndex--
	} else {
		r.colorIndex++
	}
	return c
}

func (r *rainbow) peek() styled.Color {
	const (
		center = 128
		width  = 127
	)

	at := func(offset float64) uint8 {
		return uint8(int(math.Sin(r.frequency*float64(r.colorIndex)+offset+float64(r.phase))*width + center))
	}

	return styled.Color{R: at(2), G: at(0), B: at(4)}
}
