package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/supervisor"
)

const namespace = "picalc"

// Recorder implements button.Observer and supervisor.Observer. Every method
// only updates in-memory collectors, so it is safe to call with the
// debouncer or supervisor lock held.
type Recorder struct {
	registry *prometheus.Registry

	steps       prometheus.Counter
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	convergence prometheus.Counter
	presses     *prometheus.CounterVec
	stale       *prometheus.CounterVec
	requests    *prometheus.CounterVec

	value     prometheus.Gauge
	iteration prometheus.Gauge
	converged prometheus.Gauge
	running   prometheus.Gauge
}

var (
	_ button.Observer     = (*Recorder)(nil)
	_ supervisor.Observer = (*Recorder)(nil)
)

// NewRecorder creates a recorder with its own registry, including the Go
// runtime collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Total refinement steps performed.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Accepted supervisor commands by operation.",
		}, []string{"op"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_transitions_total",
			Help:      "Supervisor commands refused in the current state.",
		}, []string{"op", "state"}),
		convergence: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "convergences_total",
			Help:      "Runs that reached the configured tolerance.",
		}),
		presses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "button_presses_total",
			Help:      "Debounced button classifications by line and kind.",
		}, []string{"line", "press"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "button_stale_total",
			Help:      "Classifications that reverted to idle unread.",
		}, []string{"line"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route and status.",
		}, []string{"route", "status"}),
		value: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "value",
			Help:      "Current approximation of pi.",
		}),
		iteration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "iteration",
			Help:      "Iteration counter of the current run.",
		}),
		converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "converged",
			Help:      "1 once the current run is within tolerance.",
		}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "running",
			Help:      "1 while the computation is running.",
		}),
	}

	heap := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Bytes of allocated heap objects.",
	}, func() float64 { return float64(ReadHeap().Alloc) })

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.steps, r.transitions, r.rejections, r.convergence,
		r.presses, r.stale, r.requests,
		r.value, r.iteration, r.converged, r.running,
		heap,
	)
	return r
}

// Registry returns the registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Classified counts a debounced press.
func (r *Recorder) Classified(id button.LineID, c button.Classification) {
	r.presses.WithLabelValues(strconv.Itoa(int(id)), c.String()).Inc()
}

// Stale counts a classification that expired unread.
func (r *Recorder) Stale(id button.LineID, _ button.Classification) {
	r.stale.WithLabelValues(strconv.Itoa(int(id))).Inc()
}

// Transitioned counts an accepted command and refreshes the gauges.
func (r *Recorder) Transitioned(op string, s supervisor.Snapshot) {
	r.transitions.WithLabelValues(op).Inc()
	r.setGauges(s)
}

// Rejected counts a refused command.
func (r *Recorder) Rejected(op string, state supervisor.State) {
	r.rejections.WithLabelValues(op, state.String()).Inc()
}

// Stepped counts a step and refreshes the gauges.
func (r *Recorder) Stepped(s supervisor.Snapshot) {
	r.steps.Inc()
	r.setGauges(s)
}

// Converged counts a run reaching tolerance.
func (r *Recorder) Converged(s supervisor.Snapshot) {
	r.convergence.Inc()
	r.setGauges(s)
}

// ObserveRequest counts one served HTTP request.
func (r *Recorder) ObserveRequest(route string, status int) {
	r.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (r *Recorder) setGauges(s supervisor.Snapshot) {
	r.value.Set(s.Value)
	r.iteration.Set(float64(s.Iteration))
	r.converged.Set(boolGauge(s.Converged))
	r.running.Set(boolGauge(s.State == supervisor.Running))
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
