package crossview

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularTransform reports that a view transform could not be inverted.
var ErrSingularTransform = errors.New("crossview: view transform is singular")

// Transform is a 4x4 homogeneous transform mapping view-local coordinates
// to world coordinates. The inverse direction (world to view-local) goes
// through Inverted.
//
// Elements are stored row-major. Apply performs the homogeneous divide, so
// perspective rows are handled, though slice views in practice use affine
// transforms.
type Transform struct {
	m [16]float64
}

// IdentityTransform returns the identity transform.
func IdentityTransform() *Transform {
	return &Transform{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// NewTransform creates a transform from 16 row-major elements.
func NewTransform(elements [16]float64) *Transform {
	return &Transform{m: elements}
}

// Translation returns a transform that translates by (x, y, z).
func Translation(x, y, z float64) *Transform {
	t := IdentityTransform()
	t.m[3], t.m[7], t.m[11] = x, y, z
	return t
}

// Scaling returns a transform that scales each axis.
func Scaling(x, y, z float64) *Transform {
	t := IdentityTransform()
	t.m[0], t.m[5], t.m[10] = x, y, z
	return t
}

// Element returns the element at (row, col).
func (t *Transform) Element(row, col int) float64 {
	return t.m[row*4+col]
}

// SetElement sets the element at (row, col).
func (t *Transform) SetElement(row, col int, v float64) {
	t.m[row*4+col] = v
}

// Clone returns a copy of the transform.
func (t *Transform) Clone() *Transform {
	c := *t
	return &c
}

// Multiply returns t * o.
func (t *Transform) Multiply(o *Transform) *Transform {
	var out Transform
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += t.m[r*4+k] * o.m[k*4+c]
			}
			out.m[r*4+c] = sum
		}
	}
	return &out
}

// Apply maps v through the transform as a homogeneous point (w=1) and
// divides by the resulting w component. A zero w leaves the raw product
// undivided.
func (t *Transform) Apply(v Vec3) Vec3 {
	x := t.m[0]*v.X + t.m[1]*v.Y + t.m[2]*v.Z + t.m[3]
	y := t.m[4]*v.X + t.m[5]*v.Y + t.m[6]*v.Z + t.m[7]
	z := t.m[8]*v.X + t.m[9]*v.Y + t.m[10]*v.Z + t.m[11]
	w := t.m[12]*v.X + t.m[13]*v.Y + t.m[14]*v.Z + t.m[15]
	if w == 0 {
		return Vec3{X: x, Y: y, Z: z}
	}
	return Vec3{X: x / w, Y: y / w, Z: z / w}
}

// Inverted returns the inverse transform, or ErrSingularTransform when the
// matrix is not invertible.
func (t *Transform) Inverted() (*Transform, error) {
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(4, 4, t.m[:])); err != nil {
		return nil, ErrSingularTransform
	}
	var out Transform
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.m[r*4+c] = inv.At(r, c)
		}
	}
	return &out, nil
}
