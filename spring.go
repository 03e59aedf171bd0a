package streak

import "math"

// springCoefs are the closed-form coefficients of a damped harmonic
// oscillator advanced by a fixed time step. They are computed once per frame
// and applied to every spring that shares the same parameters.
//
//	pos' = (pos-target)*posPos + vel*posVel + target
//	vel' = (pos-target)*velPos + vel*velVel
type springCoefs struct {
	posPos, posVel float64
	velPos, velVel float64
}

// identitySpring leaves position and velocity unchanged.
var identitySpring = springCoefs{posPos: 1, velVel: 1}

const springEpsilon = 1e-4

// newSpringCoefs computes coefficients for a spring with angular frequency
// omega (rad/s) and damping ratio zeta, advanced by dt seconds.
func newSpringCoefs(dt, omega, zeta float64) springCoefs {
	if zeta < 0 {
		zeta = 0
	}
	if omega < springEpsilon || dt <= 0 {
		return identitySpring
	}

	switch {
	case zeta > 1+springEpsilon:
		// Over-damped.
		za := -omega * zeta
		zb := omega * math.Sqrt(zeta*zeta-1)
		z1, z2 := za-zb, za+zb
		e1, e2 := math.Exp(z1*dt), math.Exp(z2*dt)

		inv := 1 / (2 * zb)
		e1o := e1 * inv
		e2o := e2 * inv
		z1e1o := z1 * e1o
		z2e2o := z2 * e2o

		return springCoefs{
			posPos: e1o*z2 - z2e2o + e2,
			posVel: -e1o + e2o,
			velPos: (z1e1o - z2e2o + e2) * z2,
			velVel: -z1e1o + z2e2o,
		}

	case zeta < 1-springEpsilon:
		// Under-damped.
		oz := omega * zeta
		alpha := omega * math.Sqrt(1-zeta*zeta)
		exp := math.Exp(-oz * dt)
		sin, cos := math.Sincos(alpha * dt)

		expSin := exp * sin
		expCos := exp * cos
		expOzSinA := exp * oz * sin / alpha

		return springCoefs{
			posPos: expCos + expOzSinA,
			posVel: expSin / alpha,
			velPos: -expSin*alpha - oz*expOzSinA,
			velVel: expCos - expOzSinA,
		}

	default:
		// Critically damped.
		exp := math.Exp(-omega * dt)
		timeExp := dt * exp
		timeExpFreq := timeExp * omega

		return springCoefs{
			posPos: timeExpFreq + exp,
			posVel: timeExp,
			velPos: -omega * timeExpFreq,
			velVel: -timeExpFreq + exp,
		}
	}
}

// Spring is a scalar that chases a target with damped harmonic motion.
type Spring struct {
	Pos, Vel float64
}

// step advances the spring toward target using precomputed coefficients.
func (s *Spring) step(target float64, c springCoefs) {
	off := s.Pos - target
	vel := s.Vel
	s.Pos = off*c.posPos + vel*c.posVel + target
	s.Vel = off*c.velPos + vel*c.velVel
}

// Snap places the spring at rest on pos.
func (s *Spring) Snap(pos float64) {
	s.Pos = pos
	s.Vel = 0
}
