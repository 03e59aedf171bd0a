package streak

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// IdentityRotation leaves vectors unchanged.
var IdentityRotation = r3.Rotation{Real: 1}

// LocalForward is the forward axis of every object and camera in its own frame.
var LocalForward = r3.Vec{Z: 1}

// LocalUp is the up axis of every object and camera in its own frame.
var LocalUp = r3.Vec{Y: 1}

// normalizeRotation returns q scaled to unit length. The zero quaternion is
// treated as the identity so zero-valued structs behave sensibly.
func normalizeRotation(q r3.Rotation) r3.Rotation {
	n := quat.Abs(quat.Number(q))
	if n == 0 {
		return IdentityRotation
	}
	return r3.Rotation(quat.Scale(1/n, quat.Number(q)))
}

// rotate applies q to v. q need not be unit length.
func rotate(q r3.Rotation, v r3.Vec) r3.Vec {
	u := quat.Number(normalizeRotation(q))
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(u, p), quat.Conj(u))
	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// ToLocal expresses the world-space direction v in the frame whose
// orientation is q.
func ToLocal(q r3.Rotation, v r3.Vec) r3.Vec {
	return rotate(r3.Rotation(quat.Conj(quat.Number(q))), v)
}

// ToWorld expresses the local-space direction v in world space.
func ToWorld(q r3.Rotation, v r3.Vec) r3.Vec {
	return rotate(q, v)
}

// ComposeRotation returns the rotation that applies b, then a.
func ComposeRotation(a, b r3.Rotation) r3.Rotation {
	return r3.Rotation(quat.Mul(quat.Number(normalizeRotation(a)), quat.Number(normalizeRotation(b))))
}

// LookRotation returns the orientation whose forward axis points along dir
// and whose up axis is as close to up as possible. Returns the identity when
// dir has zero length; falls back to world Z as up when dir is parallel to up.
func LookRotation(dir, up r3.Vec) r3.Rotation {
	if r3.Norm(dir) == 0 {
		return IdentityRotation
	}
	f := r3.Unit(dir)
	right := r3.Cross(up, f)
	if r3.Norm(right) < 1e-9 {
		right = r3.Cross(r3.Vec{Z: 1}, f)
		if r3.Norm(right) < 1e-9 {
			right = r3.Vec{X: 1}
		}
	}
	right = r3.Unit(right)
	u := r3.Cross(f, right)
	return rotationFromBasis(right, u, f)
}

// rotationFromBasis converts an orthonormal basis (the rotated X, Y and Z
// axes) into a quaternion.
func rotationFromBasis(x, y, z r3.Vec) r3.Rotation {
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	var q quat.Number
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = quat.Number{Real: 0.25 / s, Imag: (m21 - m12) * s, Jmag: (m02 - m20) * s, Kmag: (m10 - m01) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{Real: (m21 - m12) / s, Imag: 0.25 * s, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: 0.25 * s, Kmag: (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: 0.25 * s}
	}
	return normalizeRotation(r3.Rotation(q))
}
