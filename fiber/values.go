package fiber

import "github.com/go-gl/mathgl/mgl64"

// Vector3 is a 3-component vector compared structurally, like BABYLON.Vector3.
type Vector3 struct {
	mgl64.Vec3
}

func NewVector3(x, y, z float64) Vector3 { return Vector3{mgl64.Vec3{x, y, z}} }

// Equals reports whether other is a Vector3 (or *Vector3) with the same
// components.
func (v Vector3) Equals(other any) bool {
	switch o := other.(type) {
	case Vector3:
		return v.Vec3 == o.Vec3
	case *Vector3:
		return o != nil && v.Vec3 == o.Vec3
	}
	return false
}

// EqualsWithEpsilon compares component-wise within epsilon.
func (v Vector3) EqualsWithEpsilon(o Vector3, epsilon float64) bool {
	return v.Vec3.ApproxEqualThreshold(o.Vec3, epsilon)
}

// Color3 is an RGB color with components in [0, 1], like BABYLON.Color3.
type Color3 struct {
	rgb mgl64.Vec3
}

func NewColor3(r, g, b float64) Color3 { return Color3{mgl64.Vec3{r, g, b}} }

func (c Color3) R() float64 { return c.rgb.X() }
func (c Color3) G() float64 { return c.rgb.Y() }
func (c Color3) B() float64 { return c.rgb.Z() }

func (c Color3) Equals(other any) bool {
	switch o := other.(type) {
	case Color3:
		return c.rgb == o.rgb
	case *Color3:
		return o != nil && c.rgb == o.rgb
	}
	return false
}

// Scale multiplies every channel by s.
func (c Color3) Scale(s float64) Color3 { return Color3{c.rgb.Mul(s)} }
