package render

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel position plus view depth
type screenPoint struct {
	X, Y, Z float64
}

// edgeFunction is twice the signed area of (a, b, c)
func edgeFunction(a, b, c screenPoint) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// fillTriangle rasterizes a triangle with depth testing. shade receives the
// barycentric weights of each covered pixel center.
func fillTriangle(img *image.NRGBA, zbuffer []float64, p0, p1, p2 screenPoint, shade func(w0, w1, w2 float64) color.NRGBA) {
	area := edgeFunction(p0, p1, p2)
	if area == 0 {
		return
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	minX := int(math.Max(0, math.Floor(math.Min(p0.X, math.Min(p1.X, p2.X)))))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(math.Max(p0.X, math.Max(p1.X, p2.X)))))
	minY := int(math.Max(0, math.Floor(math.Min(p0.Y, math.Min(p1.Y, p2.Y)))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(math.Max(p0.Y, math.Max(p1.Y, p2.Y)))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := screenPoint{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			w0 := edgeFunction(p1, p2, p) / area
			w1 := edgeFunction(p2, p0, p) / area
			w2 := edgeFunction(p0, p1, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			// Depth test - draw if closer (smaller z)
			z := w0*p0.Z + w1*p1.Z + w2*p2.Z
			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetNRGBA(x, y, shade(w0, w1, w2))
			}
		}
	}
}

// drawLine draws a depth-tested line using Bresenham's algorithm. Pixels up
// to bias behind the stored depth still pass so edges show on their faces.
func drawLine(img *image.NRGBA, zbuffer []float64, a, b screenPoint, col color.NRGBA, bias float64) {
	bounds := img.Bounds()
	width := bounds.Dx()

	x1, y1 := int(math.Round(a.X)), int(math.Round(a.Y))
	x2, y2 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			z := a.Z
			if steps > 0 {
				z += (b.Z - a.Z) * float64(i) / float64(steps)
			}
			idx := y1*width + x1
			if z <= zbuffer[idx]+bias {
				img.SetNRGBA(x1, y1, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawPoint draws a depth-tested square dot
func drawPoint(img *image.NRGBA, zbuffer []float64, p screenPoint, col color.NRGBA, radius int) {
	bounds := img.Bounds()
	width := bounds.Dx()
	cx, cy := int(math.Floor(p.X)), int(math.Floor(p.Y))

	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= bounds.Max.X || y < 0 || y >= bounds.Max.Y {
				continue
			}
			idx := y*width + x
			if p.Z < zbuffer[idx] {
				zbuffer[idx] = p.Z
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
