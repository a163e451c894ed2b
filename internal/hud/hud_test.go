package hud

import (
	"slices"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/DMFirmy/GHud/internal/device"
	"github.com/DMFirmy/GHud/internal/logging"
	"github.com/DMFirmy/GHud/internal/metrics"
	"github.com/DMFirmy/GHud/internal/orbit"
	"github.com/DMFirmy/GHud/internal/render"
)

type fakeHost struct {
	vessel, target *orbit.Subject
}

func (h *fakeHost) Vessel() (orbit.Subject, bool) { return get(h.vessel) }
func (h *fakeHost) Target() (orbit.Subject, bool) { return get(h.target) }

func get(s *orbit.Subject) (orbit.Subject, bool) {
	if s == nil {
		return orbit.Subject{}, false
	}
	return *s, true
}

func kerbalX() *orbit.Subject {
	return &orbit.Subject{
		Name: "Kerbal X",
		Orbit: orbit.Snapshot{
			ApR: 700000, ApA: 100000,
			PeR: 700000, PeA: 100000,
			SemiMajorAxis:       700000,
			SemiMinorAxis:       700000,
			RadiusAtTrueAnomaly: 700000,
			BodyDiameter:        1200000,
			AtmosphereDiameter:  1340000,
			BodyName:            "Kerbin",
			Velocity:            2279.5,
		},
	}
}

// lcd is one device under test with a settable button mask.
type lcd struct {
	dev  *device.Device
	rec  *render.Recorder
	mask device.Buttons
}

type fixture struct {
	hud     *HUD
	host    *fakeHost
	mono    *lcd
	qvga    *lcd
	metrics *metrics.Collector
	t0      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fonts, err := render.NewFonts()
	if err != nil {
		t.Fatal(err)
	}
	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}

	f := &fixture{host: &fakeHost{}, metrics: m, t0: time.Unix(1_700_000_000, 0)}
	var devs []*device.Device
	for _, p := range []device.Profile{device.Mono, device.QVGA} {
		l := &lcd{rec: render.NewRecorder(p.Width, p.Height, fonts)}
		l.dev = device.New(p, l.rec, nil, device.ButtonFunc(func() device.Buttons { return l.mask }))
		if err := l.dev.Setup(); err != nil {
			t.Fatal(err)
		}
		devs = append(devs, l.dev)
		if p.Color {
			f.qvga = l
		} else {
			f.mono = l
		}
	}
	f.hud = New(f.host, devs, DefaultInterval, m, logging.Discard())
	return f
}

func (f *fixture) reset() {
	f.mono.rec.Reset()
	f.qvga.rec.Reset()
}

func TestUpdateWaitsForFlight(t *testing.T) {
	f := newFixture(t)
	if !f.hud.Update(f.t0) {
		t.Fatal("first update skipped")
	}
	for _, l := range []*lcd{f.mono, f.qvga} {
		if got := l.rec.Texts(); !slices.Equal(got, []string{render.MsgWaiting}) {
			t.Errorf("%s texts = %q", l.dev.Profile.Name, got)
		}
	}
	if got := testutil.ToFloat64(f.metrics.Notices.WithLabelValues(render.MsgWaiting)); got != 2 {
		t.Errorf("waiting notices = %v, want 2", got)
	}
}

func TestUpdateThrottles(t *testing.T) {
	f := newFixture(t)
	f.host.vessel = kerbalX()

	steps := []struct {
		after time.Duration
		want  bool
	}{
		{0, true},
		{100 * time.Millisecond, false},
		{199 * time.Millisecond, false},
		{200 * time.Millisecond, true},
		{350 * time.Millisecond, false},
		{400 * time.Millisecond, true},
	}
	for _, s := range steps {
		if got := f.hud.Update(f.t0.Add(s.after)); got != s.want {
			t.Errorf("Update(+%v) = %v, want %v", s.after, got, s.want)
		}
	}
	if got := testutil.ToFloat64(f.metrics.FramesSkipped); got != 3 {
		t.Errorf("skipped = %v, want 3", got)
	}
	if got := testutil.ToFloat64(f.metrics.FramesRendered.WithLabelValues("qvga")); got != 3 {
		t.Errorf("qvga frames = %v, want 3", got)
	}
}

func TestUpdateRendersSubjects(t *testing.T) {
	f := newFixture(t)
	f.host.vessel = kerbalX()
	f.hud.Update(f.t0)

	if texts := f.mono.rec.Texts(); !slices.Contains(texts, "Kerbal X") {
		t.Errorf("mono vessel info texts = %q", texts)
	}
	// The split's lower half is the vessel graph.
	if n := len(f.qvga.rec.Ops(render.OpStrokeEllipse)); n == 0 {
		t.Error("qvga drew no orbit")
	}
	if slices.Contains(f.qvga.rec.Texts(), render.MsgNoTarget) {
		t.Error("vessel split asked for the target")
	}
}

func TestMenuCyclesModules(t *testing.T) {
	f := newFixture(t)
	f.host.vessel = kerbalX()
	f.hud.Update(f.t0)

	f.mono.mask = device.Mask(device.ButtonMenu)
	f.reset()
	if !f.hud.Update(f.t0.Add(10 * time.Millisecond)) {
		t.Fatal("button press did not redraw")
	}
	m := f.mono.dev.ActiveModule()
	if m.ID != 2 || !m.Target {
		t.Errorf("mono module = %d target=%v, want target info", m.ID, m.Target)
	}
	if got := f.mono.rec.Texts(); !slices.Equal(got, []string{render.MsgNoTarget}) {
		t.Errorf("mono texts = %q", got)
	}
	if f.qvga.dev.ActiveModule().ID != 1 {
		t.Error("menu on mono moved the qvga module")
	}

	// Holding the button raises nothing more.
	f.hud.Update(f.t0.Add(300 * time.Millisecond))
	if f.mono.dev.ActiveModule().ID != 2 {
		t.Error("held menu cycled again")
	}
	if got := testutil.ToFloat64(f.metrics.ModuleCycles.WithLabelValues("mono", "modules")); got != 1 {
		t.Errorf("module cycles = %v, want 1", got)
	}
}

func TestSplitButtons(t *testing.T) {
	f := newFixture(t)
	f.host.vessel = kerbalX()
	f.hud.Update(f.t0)
	split := f.qvga.dev.ActiveModule().Split

	f.qvga.mask = device.Mask(device.ButtonUp)
	f.hud.Update(f.t0.Add(time.Millisecond))
	if top, bottom := split.Top().ID, split.Bottom().ID; top != 2 || bottom != 4 {
		t.Errorf("after up = {%d,%d}, want {2,4}", top, bottom)
	}

	f.qvga.mask = 0
	f.hud.Update(f.t0.Add(2 * time.Millisecond))
	f.qvga.mask = device.Mask(device.ButtonDown)
	f.hud.Update(f.t0.Add(3 * time.Millisecond))
	if top, bottom := split.Top().ID, split.Bottom().ID; top != 3 || bottom != 1 {
		t.Errorf("after down = {%d,%d}, want {3,1}", top, bottom)
	}
}

func TestUnboundButtons(t *testing.T) {
	f := newFixture(t)
	f.host.vessel = kerbalX()
	f.hud.Update(f.t0)
	split := f.qvga.dev.ActiveModule().Split

	f.mono.mask = device.Mask(device.ButtonUp, device.ButtonDown)
	f.qvga.mask = device.Mask(device.ButtonLeft, device.ButtonOk, device.ButtonCancel)
	if f.hud.Update(f.t0.Add(time.Millisecond)) {
		t.Error("unbound buttons forced a redraw")
	}
	if f.mono.dev.ActiveModule().ID != 1 {
		t.Error("up/down changed the mono module")
	}
	if split.Top().ID != 1 || split.Bottom().ID != 3 {
		t.Error("unbound buttons cycled the split")
	}
	if got := testutil.ToFloat64(f.metrics.ButtonEvents.WithLabelValues("qvga", "ok")); got != 1 {
		t.Errorf("ok events = %v, want 1", got)
	}
}
