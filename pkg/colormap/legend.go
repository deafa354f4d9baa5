package colormap

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// legendBaseWidth and legendBaseHeight are the native legend resolution;
	// other sizes are scaled from it.
	legendBaseWidth  = 256
	legendBaseHeight = 48
	legendBarHeight  = 24
	legendMargin     = 8
)

// Legend renders a horizontal color bar for tf with the minimum, midpoint and
// maximum values printed underneath, scaled to width x height.
func Legend(tf TransferFunction, width, height int) *image.NRGBA {
	base := image.NewNRGBA(image.Rect(0, 0, legendBaseWidth, legendBaseHeight))
	draw.Draw(base, base.Bounds(), image.White, image.Point{}, draw.Src)

	min, max := tf.Range()
	barWidth := legendBaseWidth - 2*legendMargin
	for x := 0; x < barWidth; x++ {
		t := float64(x) / float64(barWidth-1)
		c := tf.MapColor(min + t*(max-min))
		for y := 2; y < 2+legendBarHeight; y++ {
			base.SetNRGBA(legendMargin+x, y, c)
		}
	}

	labelY := 2 + legendBarHeight + basicfont.Face7x13.Ascent + 2
	drawLabel(base, formatValue(min), legendMargin, labelY, alignLeft)
	drawLabel(base, formatValue((min+max)/2), legendBaseWidth/2, labelY, alignCenter)
	drawLabel(base, formatValue(max), legendBaseWidth-legendMargin, labelY, alignRight)

	if width <= 0 || height <= 0 || (width == legendBaseWidth && height == legendBaseHeight) {
		return base
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return dst
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

func drawLabel(img draw.Image, text string, x, y int, align alignment) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(text).Round()
	switch align {
	case alignCenter:
		x -= w / 2
	case alignRight:
		x -= w
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
