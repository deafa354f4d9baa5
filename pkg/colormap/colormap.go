// Package colormap maps scalar values to colors with a fixed diverging
// blue-to-red ramp.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidRange reports a range with min > max or a NaN bound.
var ErrInvalidRange = errors.New("invalid scalar range")

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// NRGBA converts the color to 8-bit channels, fully opaque.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ControlPoint pins a color to a scalar value.
type ControlPoint struct {
	Value float64
	Color RGB
}

// ramp is the diverging palette, one color per eighth of the range.
var ramp = [9]RGB{
	{0, 0, 1},
	{0, .2157, 1},
	{0, .4275, 1},
	{.0392, .6431, .9961},
	{.2745, .8157, .9255},
	{.9961, .6431, .4745},
	{1, .4275, .2745},
	{1, .2157, .1333},
	{1, 0, 0},
}

// TransferFunction is a piecewise-linear scalar-to-color map. Control point
// values are strictly increasing, except for a constant map which has a
// single control point.
type TransferFunction struct {
	points []ControlPoint
}

// Build spreads the ramp evenly over [min, max]. When min == max the result
// is a constant map that returns the lowest ramp color.
func Build(min, max float64) (TransferFunction, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return TransferFunction{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	if min == max {
		return TransferFunction{points: []ControlPoint{{Value: min, Color: ramp[0]}}}, nil
	}

	points := make([]ControlPoint, len(ramp))
	last := len(ramp) - 1
	for i, c := range ramp {
		t := float64(i) / float64(last)
		points[i] = ControlPoint{Value: min + t*(max-min), Color: c}
	}
	// Pin the endpoints so the range is reproduced exactly.
	points[0].Value = min
	points[last].Value = max
	return TransferFunction{points: points}, nil
}

// Points returns a copy of the control points in increasing order.
func (tf TransferFunction) Points() []ControlPoint {
	out := make([]ControlPoint, len(tf.points))
	copy(out, tf.points)
	return out
}

// Range returns the scalar range the function spans.
func (tf TransferFunction) Range() (min, max float64) {
	if len(tf.points) == 0 {
		return 0, 0
	}
	return tf.points[0].Value, tf.points[len(tf.points)-1].Value
}

// IsZero reports whether tf was never built.
func (tf TransferFunction) IsZero() bool {
	return len(tf.points) == 0
}

// Map returns the color for v. Values outside the range take the nearest
// endpoint color; NaN maps to the lowest color.
func (tf TransferFunction) Map(v float64) RGB {
	n := len(tf.points)
	if n == 0 {
		return RGB{}
	}
	if n == 1 || math.IsNaN(v) || v <= tf.points[0].Value {
		return tf.points[0].Color
	}
	if v >= tf.points[n-1].Value {
		return tf.points[n-1].Color
	}

	for i := 1; i < n; i++ {
		hi := tf.points[i]
		if v > hi.Value {
			continue
		}
		if v == hi.Value {
			return hi.Color
		}
		lo := tf.points[i-1]
		t := (v - lo.Value) / (hi.Value - lo.Value)
		return RGB{
			R: lo.Color.R + t*(hi.Color.R-lo.Color.R),
			G: lo.Color.G + t*(hi.Color.G-lo.Color.G),
			B: lo.Color.B + t*(hi.Color.B-lo.Color.B),
		}
	}
	return tf.points[n-1].Color
}

// MapColor is Map converted to an 8-bit color.
func (tf TransferFunction) MapColor(v float64) color.NRGBA {
	return tf.Map(v).NRGBA()
}

// MapAll colors every value, producing a per-point color buffer.
func (tf TransferFunction) MapAll(values []float64) []color.NRGBA {
	out := make([]color.NRGBA, len(values))
	for i, v := range values {
		out[i] = tf.MapColor(v)
	}
	return out
}
