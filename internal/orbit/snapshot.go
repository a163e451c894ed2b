package orbit

// Snapshot is the orbital state of one subject for one frame.
// Radii are measured from the body center, altitudes from its surface.
// Distances are in meters, angles in degrees, times in seconds.
type Snapshot struct {
	ApR, ApA float64 // apoapsis radius / altitude
	PeR, PeA float64 // periapsis radius / altitude

	SemiMajorAxis float64
	SemiMinorAxis float64
	Eccentricity  float64
	Inclination   float64

	TrueAnomaly         float64
	RadiusAtTrueAnomaly float64

	BodyDiameter       float64
	AtmosphereDiameter float64 // 0 if the body has no atmosphere
	BodyName           string

	Velocity        float64
	TimeToApoapsis  float64
	TimeToPeriapsis float64
}

// IsLeavingSoi reports whether the subject is on its way out of the
// body's sphere of influence, in which case no ellipse can be drawn.
func (s Snapshot) IsLeavingSoi() bool {
	return s.ApR < 0 && s.ApR < s.PeR
}

// HasAtmosphere reports whether the orbited body has an atmosphere to draw.
func (s Snapshot) HasAtmosphere() bool {
	return s.AtmosphereDiameter > 0
}

// Subject is what a panel needs to render one vessel for one frame.
type Subject struct {
	Name      string
	Situation string // "" while orbiting normally
	Orbit     Snapshot
}
