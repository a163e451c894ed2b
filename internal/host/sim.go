package host

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/brunoga/deep"
	"github.com/mlange-42/ark/ecs"

	"github.com/DMFirmy/GHud/internal/orbit"
)

// Callsign names a vessel.
type Callsign struct {
	Name string
}

// Elements is the fixed shape of a vessel's orbit.
type Elements struct {
	Body         string
	Periapsis    float64 // altitude, m
	Eccentricity float64
	Inclination  float64 // degrees
	Step         float64 // anomaly advance per tick, degrees
}

// Anomaly is where on its orbit a vessel is, in degrees.
type Anomaly struct {
	Degrees float64
}

// Sim is a stand-in for the game: vessels coast along fixed Kepler orbits
// and the anomaly advances by a fixed step per tick.
type Sim struct {
	ECS      *ecs.World
	Scenario *Scenario
	Ticks    uint64

	vessels  []ecs.Entity // scenario order; vessels[0] is the active vessel
	target   int          // index into vessels, or -1
	inFlight bool

	callsigns *ecs.Map[Callsign]
	elements  *ecs.Map[Elements]
	anomalies *ecs.Map[Anomaly]
	movers    *ecs.Filter2[Elements, Anomaly]

	log *slog.Logger
}

// NewSim spawns one entity per scenario vessel. The first vessel is the
// active one; no target is selected. The sim keeps its own copy of s.
func NewSim(s *Scenario, log *slog.Logger) (*Sim, error) {
	s, err := deep.Copy(s)
	if err != nil {
		return nil, fmt.Errorf("copy scenario: %w", err)
	}
	w := ecs.NewWorld(256)
	spawn := ecs.NewMap3[Callsign, Elements, Anomaly](w)

	sim := &Sim{
		ECS:       w,
		Scenario:  s,
		target:    -1,
		inFlight:  true,
		callsigns: ecs.NewMap[Callsign](w),
		elements:  ecs.NewMap[Elements](w),
		anomalies: ecs.NewMap[Anomaly](w),
		movers:    ecs.NewFilter2[Elements, Anomaly](w),
		log:       log,
	}
	for _, v := range s.Vessels {
		if _, ok := s.body(v.Body); !ok {
			return nil, fmt.Errorf("vessel %q orbits %q: %w", v.Name, v.Body, ErrUnknownBody)
		}
		el := Elements{
			Body:         v.Body,
			Periapsis:    v.Periapsis,
			Eccentricity: v.Eccentricity,
			Inclination:  v.Inclination,
			Step:         v.Step,
		}
		e := spawn.NewEntity(&Callsign{Name: v.Name}, &el, &Anomaly{Degrees: normalize(v.Anomaly, v.Eccentricity)})
		sim.vessels = append(sim.vessels, e)
	}
	log.Info("scenario loaded", "name", s.Name, "vessels", len(sim.vessels))
	return sim, nil
}

// Tick advances every vessel by its step.
func (s *Sim) Tick() {
	s.Ticks++
	query := s.movers.Query()
	for query.Next() {
		el, an := query.Get()
		an.Degrees = normalize(an.Degrees+el.Step, el.Eccentricity)
	}
}

// normalize keeps an elliptic anomaly in [0, 360) and restarts an escape
// trajectory once it nears its asymptote.
func normalize(nu, e float64) float64 {
	if e >= 1 {
		if limit := escapeLimit(e); nu > limit || nu < -limit {
			return -limit
		}
		return nu
	}
	nu = math.Mod(nu, 360)
	if nu < 0 {
		nu += 360
	}
	return nu
}

// Vessel returns the active vessel. There is none before launch, after
// ToggleFlight ends the flight, or when the scenario has no vessels.
func (s *Sim) Vessel() (orbit.Subject, bool) {
	if !s.inFlight || len(s.vessels) == 0 {
		return orbit.Subject{}, false
	}
	return s.subject(s.vessels[0]), true
}

// Target returns the tracked target, if one is selected.
func (s *Sim) Target() (orbit.Subject, bool) {
	if !s.inFlight || s.target < 0 {
		return orbit.Subject{}, false
	}
	return s.subject(s.vessels[s.target]), true
}

// CycleTarget selects the next vessel after the current target, skipping
// the active vessel, and clears the target after the last one.
func (s *Sim) CycleTarget() {
	next := s.target + 1
	if next == 0 {
		next = 1
	}
	if next >= len(s.vessels) {
		next = -1
	}
	s.target = next
	if next < 0 {
		s.log.Info("target cleared")
		return
	}
	s.log.Info("target selected", "name", s.callsigns.Get(s.vessels[next]).Name)
}

// ToggleFlight enters or leaves the flight scene.
func (s *Sim) ToggleFlight() {
	s.inFlight = !s.inFlight
	s.log.Info("flight toggled", "in_flight", s.inFlight)
}

func (s *Sim) subject(e ecs.Entity) orbit.Subject {
	el := s.elements.Get(e)
	body, _ := s.Scenario.body(el.Body)
	snap := snapshot(body, *el, s.anomalies.Get(e).Degrees)
	return orbit.Subject{
		Name:      s.callsigns.Get(e).Name,
		Situation: situation(snap),
		Orbit:     snap,
	}
}
