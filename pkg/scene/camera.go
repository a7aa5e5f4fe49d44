package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays by offsetting the view direction within the image plane
type Camera struct {
	Eye        core.Vec3
	View       core.Vec3
	AxisX      core.Vec3 // Image plane x axis
	AxisY      core.Vec3 // Image plane y axis
	HalfWidth  float64   // Image plane spans [-HalfWidth, HalfWidth] along AxisX
	HalfHeight float64   // and [-HalfHeight, HalfHeight] along AxisY
}

// NewCamera builds the image plane basis from the view direction and an up hint
func NewCamera(eye, view, up core.Vec3) *Camera {
	axisX := up.Cross(view).Normalize()
	axisY := view.Cross(axisX).Normalize()

	return &Camera{
		Eye:        eye,
		View:       view,
		AxisX:      axisX,
		AxisY:      axisY,
		HalfWidth:  1.0,
		HalfHeight: 1.0,
	}
}

// SetImagePlane sets the extent of the image plane
func (c *Camera) SetImagePlane(halfWidth, halfHeight float64) {
	c.HalfWidth = halfWidth
	c.HalfHeight = halfHeight
}

// GetRay generates a ray for image plane coordinates (x, y)
func (c *Camera) GetRay(x, y float64) core.Ray {
	direction := c.View.
		Add(c.AxisX.Multiply(x)).
		Add(c.AxisY.Multiply(y)).
		Normalize()

	return core.NewRay(c.Eye, direction)
}
