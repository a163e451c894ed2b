package host

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultStep is the true anomaly advance per tick, in degrees.
const DefaultStep = 0.6

// ErrUnknownBody is returned when a vessel orbits a body the scenario does
// not define.
var ErrUnknownBody = errors.New("host: unknown body")

//go:embed scenario.json
var defaultScenario []byte

// BodyDef is one celestial body. Lengths are in meters.
type BodyDef struct {
	Name       string  `json:"name"`
	Radius     float64 `json:"radius"`
	Atmosphere float64 `json:"atmosphere"` // depth above the surface, 0 for none
	Mu         float64 `json:"mu"`         // gravitational parameter, m^3/s^2
}

// VesselDef is one vessel and its orbit. Periapsis is an altitude above the
// surface; angles are in degrees.
type VesselDef struct {
	Name         string  `json:"name"`
	Body         string  `json:"body"`
	Periapsis    float64 `json:"periapsis"`
	Eccentricity float64 `json:"eccentricity"`
	Inclination  float64 `json:"inclination"`
	Anomaly      float64 `json:"anomaly"`
	Step         float64 `json:"step"`
}

// Scenario is the JSON-serializable definition of a demo flight.
type Scenario struct {
	Name    string      `json:"name"`
	Bodies  []BodyDef   `json:"bodies"`
	Vessels []VesselDef `json:"vessels"`
}

// DefaultScenario returns the built-in Kerbin system demo.
func DefaultScenario() (*Scenario, error) {
	return LoadScenario(defaultScenario)
}

// LoadScenarioFile reads a scenario from disk.
func LoadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return LoadScenario(data)
}

// LoadScenario parses and validates a Scenario from JSON bytes.
func LoadScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	bodies := make(map[string]BodyDef, len(s.Bodies))
	for _, b := range s.Bodies {
		if b.Name == "" {
			return errors.New("body without a name")
		}
		if _, dup := bodies[b.Name]; dup {
			return fmt.Errorf("body %q defined twice", b.Name)
		}
		if b.Radius <= 0 || b.Mu <= 0 {
			return fmt.Errorf("body %q: radius and mu must be positive", b.Name)
		}
		if b.Atmosphere < 0 {
			return fmt.Errorf("body %q: negative atmosphere depth", b.Name)
		}
		bodies[b.Name] = b
	}

	for i := range s.Vessels {
		v := &s.Vessels[i]
		b, ok := bodies[v.Body]
		if !ok {
			return fmt.Errorf("vessel %q orbits %q: %w", v.Name, v.Body, ErrUnknownBody)
		}
		if b.Radius+v.Periapsis <= 0 {
			return fmt.Errorf("vessel %q: periapsis below the center of %s", v.Name, v.Body)
		}
		if v.Eccentricity < 0 || v.Eccentricity == 1 {
			return fmt.Errorf("vessel %q: eccentricity %v is not an ellipse or hyperbola", v.Name, v.Eccentricity)
		}
		if v.Step == 0 {
			v.Step = DefaultStep
		}
	}
	return nil
}

func (s *Scenario) body(name string) (BodyDef, bool) {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return BodyDef{}, false
}
