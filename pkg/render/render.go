package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/govtu/pkg/mesh"
)

var (
	// Background fills pixels not covered by the mesh.
	Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// EdgeColor is used for edges drawn on top of a surface.
	EdgeColor = color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	// BaseColor is the surface color of a mesh without a scalar field.
	BaseColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
)

const (
	ambient   = 0.35
	pointSize = 1
)

// Render draws m as seen from cam into a width x height image.
func Render(m *mesh.Mesh, cam *Camera, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	projected := project(m, cam, width, height)
	pointColor := pointColors(m)

	switch m.Representation() {
	case mesh.Surface:
		fillSurface(img, zbuffer, m, cam, projected)
	case mesh.SurfaceWithEdges:
		fillSurface(img, zbuffer, m, cam, projected)
		drawEdges(img, zbuffer, m, projected, func(a, b int64) color.NRGBA { return EdgeColor }, edgeBias(cam))
	case mesh.Wireframe:
		drawEdges(img, zbuffer, m, projected, func(a, b int64) color.NRGBA {
			return blend(pointColor(a), pointColor(b))
		}, 0)
	case mesh.Points:
		for i, p := range projected {
			if p.Z > nearPlane {
				drawPoint(img, zbuffer, p, pointColor(int64(i)), pointSize)
			}
		}
	}
	return img
}

func project(m *mesh.Mesh, cam *Camera, width, height int) []screenPoint {
	points := m.Points()
	projected := make([]screenPoint, points.Len())
	for i := range projected {
		x, y, z := cam.Project(points.At(i), float64(width), float64(height))
		projected[i] = screenPoint{X: x, Y: y, Z: z}
	}
	return projected
}

// pointColors returns the color lookup for individual points
func pointColors(m *mesh.Mesh) func(i int64) color.NRGBA {
	field := m.Field()
	if field == nil {
		return func(int64) color.NRGBA { return BaseColor }
	}
	colors := m.Colors()
	return func(i int64) color.NRGBA { return colors.MapColor(field.Values[i]) }
}

func fillSurface(img *image.NRGBA, zbuffer []float64, m *mesh.Mesh, cam *Camera, projected []screenPoint) {
	forward := cam.Forward()
	field := m.Field()
	colors := m.Colors()

	m.Triangles().Each(func(i int, tri [3]int64) {
		p0, p1, p2 := projected[tri[0]], projected[tri[1]], projected[tri[2]]
		if p0.Z <= nearPlane || p1.Z <= nearPlane || p2.Z <= nearPlane {
			return
		}

		// Two-sided lighting with the light at the camera
		light := ambient + (1-ambient)*math.Abs(m.Facet(i).Normal().Dot(forward))

		shade := func(float64, float64, float64) color.NRGBA { return lit(BaseColor, light) }
		if field != nil {
			v0, v1, v2 := field.Values[tri[0]], field.Values[tri[1]], field.Values[tri[2]]
			shade = func(w0, w1, w2 float64) color.NRGBA {
				return lit(colors.MapColor(w0*v0+w1*v1+w2*v2), light)
			}
		}
		fillTriangle(img, zbuffer, p0, p1, p2, shade)
	})
}

// drawEdges draws every distinct triangle edge once
func drawEdges(img *image.NRGBA, zbuffer []float64, m *mesh.Mesh, projected []screenPoint, edgeColor func(a, b int64) color.NRGBA, bias float64) {
	seen := make(map[[2]int64]bool)
	m.Triangles().Each(func(_ int, tri [3]int64) {
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int64{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true

			pa, pb := projected[a], projected[b]
			if pa.Z <= nearPlane || pb.Z <= nearPlane {
				continue
			}
			drawLine(img, zbuffer, pa, pb, edgeColor(a, b), bias)
		}
	})
}

func edgeBias(cam *Camera) float64 {
	return cam.Distance * 1e-3
}

func lit(c color.NRGBA, light float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(float64(c.R) * light)),
		G: uint8(math.Round(float64(c.G) * light)),
		B: uint8(math.Round(float64(c.B) * light)),
		A: c.A,
	}
}

func blend(a, b color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 255,
	}
}
