// Package metrics counts what the HUD draws and which buttons it reacts to.
package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Collector bundles the HUD's Prometheus metrics. A nil *Collector is
// valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	FramesRendered *prometheus.CounterVec // by device
	FramesSkipped  prometheus.Counter
	ButtonEvents   *prometheus.CounterVec // by device, button
	ModuleCycles   *prometheus.CounterVec // by device, list
	Notices        *prometheus.CounterVec // by message
	RenderDuration prometheus.Histogram
}

// New registers the HUD metrics against reg, or the global registry when
// reg is nil.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	rendered, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ghud_frames_rendered_total",
		Help: "Frames drawn and flushed, by device.",
	}, []string{"device"}), "ghud_frames_rendered_total")
	if err != nil {
		return nil, err
	}
	skipped, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ghud_frames_skipped_total",
		Help: "Update calls dropped by the frame interval.",
	}), "ghud_frames_skipped_total")
	if err != nil {
		return nil, err
	}
	buttons, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ghud_button_events_total",
		Help: "Button events dispatched, by device and button.",
	}, []string{"device", "button"}), "ghud_button_events_total")
	if err != nil {
		return nil, err
	}
	cycles, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ghud_module_cycles_total",
		Help: "Panel list advances, by device and list.",
	}, []string{"device", "list"}), "ghud_module_cycles_total")
	if err != nil {
		return nil, err
	}
	notices, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ghud_notices_total",
		Help: "Full-device notices shown, by message.",
	}, []string{"message"}), "ghud_notices_total")
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ghud_render_duration_seconds",
		Help:    "Time spent drawing one frame on every device.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	}), "ghud_render_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:       gatherer,
		FramesRendered: rendered,
		FramesSkipped:  skipped,
		ButtonEvents:   buttons,
		ModuleCycles:   cycles,
		Notices:        notices,
		RenderDuration: duration,
	}, nil
}

// Gatherer returns the gatherer the collector registered with.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

func (c *Collector) FrameRendered(device string) {
	if c == nil {
		return
	}
	c.FramesRendered.WithLabelValues(device).Inc()
}

func (c *Collector) FrameSkipped() {
	if c == nil {
		return
	}
	c.FramesSkipped.Inc()
}

func (c *Collector) Button(device, button string) {
	if c == nil {
		return
	}
	c.ButtonEvents.WithLabelValues(device, button).Inc()
}

func (c *Collector) Cycled(device, list string) {
	if c == nil {
		return
	}
	c.ModuleCycles.WithLabelValues(device, list).Inc()
}

func (c *Collector) Notice(msg string) {
	if c == nil {
		return
	}
	c.Notices.WithLabelValues(msg).Inc()
}

// ObserveRender records how long a frame took to draw.
func (c *Collector) ObserveRender(d time.Duration) {
	if c == nil {
		return
	}
	c.RenderDuration.Observe(d.Seconds())
}

// Summary gathers every ghud counter into name→total, summed across
// labels, and histograms into their sample counts. It is meant for a
// single log line at shutdown.
func (c *Collector) Summary() (map[string]float64, error) {
	if c == nil {
		return nil, nil
	}
	families, err := c.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out[mf.GetName()] += value(mf.GetType(), m)
		}
	}
	return out, nil
}

// SummaryKeys returns the summary's names in order.
func SummaryKeys(s map[string]float64) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	}
	return 0
}

// register adds c to reg, or returns the collector already registered
// under the same descriptor.
func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return c, nil
}
