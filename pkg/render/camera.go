package render

import (
	"math"

	"github.com/philipparndt/govtu/pkg/geometry"
)

// nearPlane is the smallest view depth a vertex may have to be drawn
const nearPlane = 0.01

// Camera is an orbiting perspective camera looking at a target point
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
	Distance float64
	Pitch    float64 // Rotation around the horizontal axis
	Yaw      float64 // Rotation around the vertical axis
}

// NewCamera creates a camera on the +Z side of a bounding box, far enough away
// to keep the whole box in view.
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance == 0 {
		distance = 1
	}

	c := &Camera{
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition places the camera on its orbit from the current angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Orbit sets the orbit angles in radians. Pitch is clamped short of the poles.
func (c *Camera) Orbit(pitch, yaw float64) {
	maxAngle := math.Pi/2 - 0.1
	c.Pitch = math.Max(-maxAngle, math.Min(maxAngle, pitch))
	c.Yaw = yaw
	c.UpdatePosition()
}

// Zoom scales the camera distance by (1 + delta)
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Forward returns the unit view direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Project maps a world point to screen coordinates and its view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Forward()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	depth := math.Max(z, nearPlane)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(depth*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(depth*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}
