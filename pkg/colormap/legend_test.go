package colormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegend_NativeSize(t *testing.T) {
	tf, err := Build(0, 100)
	require.NoError(t, err)

	img := Legend(tf, 0, 0)

	assert.Equal(t, legendBaseWidth, img.Bounds().Dx())
	assert.Equal(t, legendBaseHeight, img.Bounds().Dy())

	// The bar starts blue and ends red.
	assert.Equal(t, tf.MapColor(0), img.NRGBAAt(legendMargin, 10))
	assert.Equal(t, tf.MapColor(100), img.NRGBAAt(legendBaseWidth-legendMargin-1, 10))
}

func TestLegend_Scaled(t *testing.T) {
	tf, err := Build(-1, 1)
	require.NoError(t, err)

	img := Legend(tf, 512, 96)

	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.125", formatValue(0.125))
	assert.Equal(t, "1.235e+05", formatValue(123456))
}
