package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ZeroToTen(t *testing.T) {
	tf, err := Build(0, 10)
	require.NoError(t, err)

	points := tf.Points()
	require.Len(t, points, 9)

	wantValues := []float64{0, 1.25, 2.5, 3.75, 5, 6.25, 7.5, 8.75, 10}
	wantColors := []RGB{
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
	for i, p := range points {
		assert.InDelta(t, wantValues[i], p.Value, 1e-12, "value of point %d", i)
		assert.Equal(t, wantColors[i], p.Color, "color of point %d", i)
		if i > 0 {
			assert.Greater(t, p.Value, points[i-1].Value)
		}
	}

	min, max := tf.Range()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 10.0, max)
}

func TestBuild_NegativeRange(t *testing.T) {
	tf, err := Build(-3, 5)
	require.NoError(t, err)

	points := tf.Points()
	assert.Equal(t, -3.0, points[0].Value)
	assert.Equal(t, 5.0, points[8].Value)
	assert.InDelta(t, 1.0, points[4].Value, 1e-12)
}

func TestBuild_InvalidRange(t *testing.T) {
	_, err := Build(2, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Build(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBuild_Degenerate(t *testing.T) {
	tf, err := Build(4, 4)
	require.NoError(t, err)

	require.Len(t, tf.Points(), 1)
	for _, v := range []float64{-100, 4, 100} {
		assert.Equal(t, RGB{0, 0, 1}, tf.Map(v))
	}
	min, max := tf.Range()
	assert.Equal(t, 4.0, min)
	assert.Equal(t, 4.0, max)
}

func TestMap_InterpolatesAndClamps(t *testing.T) {
	tf, err := Build(0, 8)
	require.NoError(t, err)

	// Control points sit on integers; 0.5 is halfway between the first two.
	mid := tf.Map(0.5)
	assert.InDelta(t, 0, mid.R, 1e-12)
	assert.InDelta(t, .2157/2, mid.G, 1e-12)
	assert.InDelta(t, 1, mid.B, 1e-12)

	assert.Equal(t, RGB{.2745, .8157, .9255}, tf.Map(4))
	assert.Equal(t, RGB{0, 0, 1}, tf.Map(-1))
	assert.Equal(t, RGB{1, 0, 0}, tf.Map(9))
	assert.Equal(t, RGB{0, 0, 1}, tf.Map(math.NaN()))
}

func TestMapColor(t *testing.T) {
	tf, err := Build(0, 1)
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 255, A: 255}, tf.MapColor(0))
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, tf.MapColor(1))

	colors := tf.MapAll([]float64{0, 1})
	assert.Len(t, colors, 2)
	assert.Equal(t, tf.MapColor(1), colors[1])
}

func TestTransferFunction_ZeroValue(t *testing.T) {
	var tf TransferFunction

	assert.True(t, tf.IsZero())
	assert.Equal(t, RGB{}, tf.Map(1))
	assert.Empty(t, tf.Points())
}

func TestPoints_ReturnsCopy(t *testing.T) {
	tf, err := Build(0, 1)
	require.NoError(t, err)

	points := tf.Points()
	points[0].Value = 42

	min, _ := tf.Range()
	assert.Equal(t, 0.0, min)
}
