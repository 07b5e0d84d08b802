package raycast

import (
	"math"

	"maze/internal/actor"
)

// Camera describes the screen the scene is projected onto.
type Camera struct {
	Width  int
	Height int
	// FOV is the horizontal field of view in degrees.
	FOV float64
}

// planeScale is the half-width of the camera plane at unit distance.
func (c Camera) planeScale() float64 {
	return math.Tan(actor.Radians(c.FOV) / 2)
}

// ProjectionDistance is the distance in pixels from the eye to the
// projection plane.
func (c Camera) ProjectionDistance() float64 {
	return float64(c.Width) / 2 / c.planeScale()
}

// CameraX maps column i to [-1, 1).
func (c Camera) CameraX(i int) float64 {
	return 2*float64(i)/float64(c.Width) - 1
}

// Ray is a single column's ray. Dir is the forward vector plus the scaled
// camera plane and is not normalized, which keeps hit distances perpendicular
// to the camera plane.
type Ray struct {
	OriginX, OriginY float64
	DirX, DirY       float64
}

// Ray builds the ray for column i from the viewpoint's pose.
func (c Camera) Ray(v actor.Viewpoint, i int) Ray {
	heading := actor.Radians(v.Heading)
	plane := actor.Radians(v.Heading + 90)
	cx := c.CameraX(i) * c.planeScale()
	return Ray{
		OriginX: v.X,
		OriginY: v.Y,
		DirX:    math.Cos(heading) + math.Cos(plane)*cx,
		DirY:    math.Sin(heading) + math.Sin(plane)*cx,
	}
}

// Euclidean returns the length travelled along the ray to reach h, as
// opposed to h.Distance which is measured along the view axis.
func (r Ray) Euclidean(h Hit) float64 {
	return h.Distance * math.Hypot(r.DirX, r.DirY)
}
