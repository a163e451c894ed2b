package host

import (
	"math"

	"github.com/DMFirmy/GHud/internal/orbit"
)

const deg = math.Pi / 180

// Situations reported for the active vessel.
const (
	SituationOrbiting   = ""
	SituationSubOrbital = "Sub Orbital"
	SituationEscaping   = "Escaping"
)

// snapshot derives the per-frame orbital state of a vessel at true
// anomaly nu (degrees). Hyperbolic orbits get a negative semi-major axis
// and apoapsis radius.
func snapshot(b BodyDef, el Elements, nu float64) orbit.Snapshot {
	e := el.Eccentricity
	peR := b.Radius + el.Periapsis
	a := peR / (1 - e)
	apR := a * (1 + e)

	var minor float64
	if e < 1 {
		minor = a * math.Sqrt(1-e*e)
	}

	r := peR * (1 + e) / (1 + e*math.Cos(nu*deg))
	speed := math.Sqrt(b.Mu * (2/r - 1/a))
	toAp, toPe := apsisTimes(b.Mu, a, e, nu)

	s := orbit.Snapshot{
		ApR:                 apR,
		ApA:                 apR - b.Radius,
		PeR:                 peR,
		PeA:                 el.Periapsis,
		SemiMajorAxis:       a,
		SemiMinorAxis:       minor,
		Eccentricity:        e,
		Inclination:         el.Inclination,
		TrueAnomaly:         nu,
		RadiusAtTrueAnomaly: r,
		BodyDiameter:        2 * b.Radius,
		BodyName:            b.Name,
		Velocity:            speed,
		TimeToApoapsis:      toAp,
		TimeToPeriapsis:     toPe,
	}
	if b.Atmosphere > 0 {
		s.AtmosphereDiameter = 2 * (b.Radius + b.Atmosphere)
	}
	return s
}

// apsisTimes returns the seconds until the next apoapsis and periapsis.
// An escaping vessel never reaches apoapsis and, once past periapsis,
// never returns to it; both report zero then.
func apsisTimes(mu, a, e, nu float64) (toAp, toPe float64) {
	half := nu * deg / 2
	if e < 1 {
		n := math.Sqrt(mu / (a * a * a))
		ecc := 2 * math.Atan(math.Sqrt((1-e)/(1+e))*math.Tan(half))
		mean := wrapAngle(ecc - e*math.Sin(ecc))
		return wrapAngle(math.Pi-mean) / n, wrapAngle(2*math.Pi-mean) / n
	}

	n := math.Sqrt(mu / -(a * a * a))
	hyp := 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(half))
	mean := e*math.Sinh(hyp) - hyp
	if mean < 0 {
		toPe = -mean / n
	}
	return 0, toPe
}

// wrapAngle maps x into [0, 2π).
func wrapAngle(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

// situation classifies an orbit the way the flight display reports it.
func situation(s orbit.Snapshot) string {
	switch {
	case s.Eccentricity >= 1:
		return SituationEscaping
	case s.PeA < 0:
		return SituationSubOrbital
	default:
		return SituationOrbiting
	}
}

// escapeLimit is the largest true anomaly, in degrees, the demo lets a
// hyperbolic vessel reach before it starts over.
func escapeLimit(e float64) float64 {
	return 0.9 * math.Acos(-1/e) / deg
}
