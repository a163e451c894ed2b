package host

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/DMFirmy/GHud/internal/logging"
)

const kerbinMu = 3.5316e12

var kerbin = BodyDef{Name: "Kerbin", Radius: 600000, Atmosphere: 70000, Mu: kerbinMu}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestDefaultScenario(t *testing.T) {
	s, err := DefaultScenario()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Bodies) != 4 || len(s.Vessels) != 5 {
		t.Fatalf("bodies=%d vessels=%d", len(s.Bodies), len(s.Vessels))
	}
	for _, v := range s.Vessels {
		if v.Step == 0 {
			t.Errorf("vessel %q has no step", v.Name)
		}
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
		substr  string
	}{
		{"syntax", `{`, nil, "parse scenario"},
		{"unknown body", `{"bodies":[],"vessels":[{"name":"x","body":"Eve"}]}`, ErrUnknownBody, "Eve"},
		{"parabolic", `{"bodies":[{"name":"K","radius":1,"mu":1}],"vessels":[{"name":"x","body":"K","eccentricity":1}]}`, nil, "eccentricity"},
		{"inside body", `{"bodies":[{"name":"K","radius":10,"mu":1}],"vessels":[{"name":"x","body":"K","periapsis":-10}]}`, nil, "periapsis"},
		{"duplicate body", `{"bodies":[{"name":"K","radius":1,"mu":1},{"name":"K","radius":1,"mu":1}]}`, nil, "twice"},
		{"massless body", `{"bodies":[{"name":"K","radius":1}]}`, nil, "positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario([]byte(tt.json))
			if err == nil {
				t.Fatal("accepted")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v is not %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestLoadScenarioDefaultsStep(t *testing.T) {
	s, err := LoadScenario([]byte(`{"bodies":[{"name":"K","radius":1,"mu":1}],"vessels":[{"name":"x","body":"K","eccentricity":0.1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Vessels[0].Step != DefaultStep {
		t.Errorf("step = %v, want %v", s.Vessels[0].Step, DefaultStep)
	}
}

func TestSnapshotCircular(t *testing.T) {
	s := snapshot(kerbin, Elements{Body: "Kerbin", Periapsis: 100000}, 0)

	for name, got := range map[string]float64{"ApR": s.ApR, "PeR": s.PeR, "a": s.SemiMajorAxis, "b": s.SemiMinorAxis, "r": s.RadiusAtTrueAnomaly} {
		if !near(got, 700000, 1e-6) {
			t.Errorf("%s = %v, want 700000", name, got)
		}
	}
	if !near(s.ApA, 100000, 1e-6) || s.PeA != 100000 {
		t.Errorf("altitudes ap=%v pe=%v", s.ApA, s.PeA)
	}
	if want := math.Sqrt(kerbinMu / 700000); !near(s.Velocity, want, 1e-6) {
		t.Errorf("velocity = %v, want %v", s.Velocity, want)
	}
	if s.BodyDiameter != 1200000 || s.AtmosphereDiameter != 1340000 || s.BodyName != "Kerbin" {
		t.Errorf("body = %v/%v/%q", s.BodyDiameter, s.AtmosphereDiameter, s.BodyName)
	}
	period := 2 * math.Pi * math.Sqrt(700000*700000*700000/kerbinMu)
	if !near(s.TimeToPeriapsis, 0, 1e-6) || !near(s.TimeToApoapsis, period/2, 1e-6) {
		t.Errorf("times ap=%v pe=%v, period %v", s.TimeToApoapsis, s.TimeToPeriapsis, period)
	}
	if situation(s) != SituationOrbiting {
		t.Errorf("situation = %q", situation(s))
	}
}

func TestSnapshotElliptic(t *testing.T) {
	el := Elements{Periapsis: 90000, Eccentricity: 0.12, Inclination: 0.103}
	pe := snapshot(kerbin, el, 0)
	ap := snapshot(kerbin, el, 180)

	a := 690000 / 0.88
	if !near(pe.SemiMajorAxis, a, 1e-6) || !near(pe.ApR, a*1.12, 1e-6) {
		t.Errorf("a=%v ApR=%v", pe.SemiMajorAxis, pe.ApR)
	}
	if !near(pe.SemiMinorAxis, a*math.Sqrt(1-0.12*0.12), 1e-6) {
		t.Errorf("b = %v", pe.SemiMinorAxis)
	}
	if !near(ap.RadiusAtTrueAnomaly, ap.ApR, 1e-3) {
		t.Errorf("r at 180° = %v, want apoapsis %v", ap.RadiusAtTrueAnomaly, ap.ApR)
	}
	if pe.Velocity <= ap.Velocity {
		t.Errorf("periapsis speed %v not above apoapsis speed %v", pe.Velocity, ap.Velocity)
	}
	period := 2 * math.Pi * math.Sqrt(a*a*a/kerbinMu)
	if !near(pe.TimeToApoapsis, period/2, 1e-3) || !near(ap.TimeToPeriapsis, period/2, 1e-3) {
		t.Errorf("half-period symmetry broken: %v %v, period %v", pe.TimeToApoapsis, ap.TimeToPeriapsis, period)
	}
	// At apoapsis the next one is either now or a full period away.
	if toAp := ap.TimeToApoapsis; math.Min(toAp, period-toAp) > 1e-3 {
		t.Errorf("time to apoapsis at apoapsis = %v", toAp)
	}
	if pe.Inclination != 0.103 {
		t.Errorf("inclination = %v", pe.Inclination)
	}
}

func TestSnapshotHyperbolic(t *testing.T) {
	s := snapshot(kerbin, Elements{Periapsis: 250000, Eccentricity: 1.4}, -30)
	if s.SemiMajorAxis >= 0 || s.ApR >= 0 {
		t.Errorf("a=%v ApR=%v, want both negative", s.SemiMajorAxis, s.ApR)
	}
	if !s.IsLeavingSoi() {
		t.Error("escape trajectory not flagged as leaving")
	}
	if s.SemiMinorAxis != 0 || s.TimeToApoapsis != 0 {
		t.Errorf("b=%v toAp=%v, want 0", s.SemiMinorAxis, s.TimeToApoapsis)
	}
	if s.TimeToPeriapsis <= 0 {
		t.Errorf("inbound vessel reports %v s to periapsis", s.TimeToPeriapsis)
	}
	if out := snapshot(kerbin, Elements{Periapsis: 250000, Eccentricity: 1.4}, 30); out.TimeToPeriapsis != 0 {
		t.Errorf("outbound vessel reports %v s to periapsis", out.TimeToPeriapsis)
	}
	if situation(s) != SituationEscaping {
		t.Errorf("situation = %q", situation(s))
	}
}

func TestSituationSubOrbital(t *testing.T) {
	s := snapshot(BodyDef{Name: "Mun", Radius: 200000, Mu: 6.5138398e10}, Elements{Periapsis: -20000, Eccentricity: 0.3}, 0)
	if situation(s) != SituationSubOrbital {
		t.Errorf("situation = %q", situation(s))
	}
	if s.AtmosphereDiameter != 0 || s.HasAtmosphere() {
		t.Error("airless body reports an atmosphere")
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize(360.4, 0.1); !near(got, 0.4, 1e-9) {
		t.Errorf("normalize(360.4) = %v", got)
	}
	if got := normalize(-90, 0.1); got != 270 {
		t.Errorf("normalize(-90) = %v", got)
	}
	limit := escapeLimit(1.4)
	if got := normalize(limit+1, 1.4); got != -limit {
		t.Errorf("escape past limit = %v, want restart at %v", got, -limit)
	}
	if got := normalize(10, 1.4); got != 10 {
		t.Errorf("escape inside limit = %v", got)
	}
}

func newTestSim(t *testing.T) *Sim {
	t.Helper()
	s, err := DefaultScenario()
	if err != nil {
		t.Fatal(err)
	}
	sim, err := NewSim(s, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestSimTick(t *testing.T) {
	sim := newTestSim(t)
	v, ok := sim.Vessel()
	if !ok || v.Name != "Kerbal X" {
		t.Fatalf("Vessel = %q, %v", v.Name, ok)
	}
	before := v.Orbit.TrueAnomaly

	sim.Tick()
	v, _ = sim.Vessel()
	if !near(v.Orbit.TrueAnomaly, before+0.6, 1e-9) {
		t.Errorf("anomaly %v -> %v, want +0.6", before, v.Orbit.TrueAnomaly)
	}
	for i := 0; i < 700; i++ {
		sim.Tick()
	}
	v, _ = sim.Vessel()
	if v.Orbit.TrueAnomaly < 0 || v.Orbit.TrueAnomaly >= 360 {
		t.Errorf("anomaly %v left [0,360)", v.Orbit.TrueAnomaly)
	}
	if sim.Ticks != 701 {
		t.Errorf("Ticks = %d", sim.Ticks)
	}
}

func TestSimTargetCycle(t *testing.T) {
	sim := newTestSim(t)
	if _, ok := sim.Target(); ok {
		t.Fatal("target selected at start")
	}

	want := []string{"Mun Lander", "Minmus Hopper", "Duna Relay", "Escape Stage", ""}
	for i, w := range want {
		sim.CycleTarget()
		tg, ok := sim.Target()
		if ok != (w != "") || tg.Name != w {
			t.Errorf("press %d: target = %q, %v, want %q", i+1, tg.Name, ok, w)
		}
	}
	sim.CycleTarget()
	if tg, _ := sim.Target(); tg.Name != "Mun Lander" {
		t.Errorf("after wrap target = %q", tg.Name)
	}
}

func TestSimToggleFlight(t *testing.T) {
	sim := newTestSim(t)
	sim.CycleTarget()
	sim.ToggleFlight()
	if _, ok := sim.Vessel(); ok {
		t.Error("vessel reported outside flight")
	}
	if _, ok := sim.Target(); ok {
		t.Error("target reported outside flight")
	}
	sim.ToggleFlight()
	if _, ok := sim.Vessel(); !ok {
		t.Error("no vessel after returning to flight")
	}
}

func TestSimOwnsScenario(t *testing.T) {
	s, err := DefaultScenario()
	if err != nil {
		t.Fatal(err)
	}
	sim, err := NewSim(s, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	s.Bodies[0].Radius = 1
	s.Vessels[0].Name = "renamed"

	if sim.Scenario == s || sim.Scenario.Bodies[0].Radius != 600000 {
		t.Error("sim shares the caller's scenario")
	}
	if v, _ := sim.Vessel(); v.Orbit.BodyDiameter != 1200000 {
		t.Errorf("body diameter = %v after caller edit", v.Orbit.BodyDiameter)
	}
}

func TestSimEmptyScenario(t *testing.T) {
	sim, err := NewSim(&Scenario{}, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sim.Vessel(); ok {
		t.Error("vessel without a scenario vessel")
	}
	sim.CycleTarget()
	if _, ok := sim.Target(); ok {
		t.Error("target without a scenario vessel")
	}
	sim.Tick()
}
