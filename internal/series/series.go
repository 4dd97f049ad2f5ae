package series

import "math"

// Reference target and tolerance used when none is configured.
const (
	// Pi is the value every registered series converges to.
	Pi = math.Pi
	// DefaultEpsilon asks for five correct decimals.
	DefaultEpsilon = 1e-5
)

// Kind names a registered series.
type Kind string

// Registered series kinds.
const (
	Leibniz    Kind = "leibniz"
	Nilakantha Kind = "nilakantha"
)

// Worker incrementally evaluates a convergent series. A Worker is not safe
// for concurrent use; its owner serializes every call.
type Worker interface {
	// Name returns a human-readable name for display.
	Name() string
	// Kind returns the registry key of the series.
	Kind() Kind
	// Initialize resets the worker to its first term.
	Initialize()
	// AdvanceOneTerm performs one refinement step.
	AdvanceOneTerm()
	// CurrentValue returns the current approximation of the target.
	CurrentValue() float64
	// Terms returns how many series terms have been accumulated.
	Terms() uint64
	// HasReachedTolerance reports whether the current value lies within
	// epsilon of target.
	HasReachedTolerance(target, epsilon float64) bool
}

func withinTolerance(value, target, epsilon float64) bool {
	return math.Abs(value-target) < epsilon
}

// LeibnizSeries evaluates π/4 = 1 − 1/3 + 1/5 − 1/7 + …
//
// Each step adds one (−, +) pair of terms, so successive values approach π
// from above.
type LeibnizSeries struct {
	sum   float64
	pairs uint64
}

// NewLeibniz returns an initialized Leibniz worker.
func NewLeibniz() *LeibnizSeries {
	s := &LeibnizSeries{}
	s.Initialize()
	return s
}

// Name returns "Leibniz".
func (s *LeibnizSeries) Name() string { return "Leibniz" }

// Kind returns Leibniz.
func (s *LeibnizSeries) Kind() Kind { return Leibniz }

// Initialize resets the partial sum to the first term.
func (s *LeibnizSeries) Initialize() {
	s.sum = 1
	s.pairs = 0
}

// AdvanceOneTerm subtracts 1/(4i+3) and adds 1/(4i+5).
func (s *LeibnizSeries) AdvanceOneTerm() {
	base := 4 * float64(s.pairs)
	s.sum = s.sum - 1/(base+3) + 1/(base+5)
	s.pairs++
}

// CurrentValue returns four times the partial sum.
func (s *LeibnizSeries) CurrentValue() float64 { return 4 * s.sum }

// Terms returns the number of terms accumulated, including the leading 1.
func (s *LeibnizSeries) Terms() uint64 { return saturatingTerms(s.pairs) }

// HasReachedTolerance reports whether the value is within epsilon of target.
func (s *LeibnizSeries) HasReachedTolerance(target, epsilon float64) bool {
	return withinTolerance(s.CurrentValue(), target, epsilon)
}

// NilakanthaSeries evaluates π = 3 + 4/(2·3·4) − 4/(4·5·6) + 4/(6·7·8) − …
//
// Each step adds one (+, −) pair of terms, so successive values approach π
// from below.
type NilakanthaSeries struct {
	value float64
	n     uint64
}

// NewNilakantha returns an initialized Nilakantha worker.
func NewNilakantha() *NilakanthaSeries {
	s := &NilakanthaSeries{}
	s.Initialize()
	return s
}

// Name returns "Nilakantha".
func (s *NilakanthaSeries) Name() string { return "Nilakantha" }

// Kind returns Nilakantha.
func (s *NilakanthaSeries) Kind() Kind { return Nilakantha }

// Initialize resets the value to 3 and the term index to 1.
func (s *NilakanthaSeries) Initialize() {
	s.value = 3
	s.n = 1
}

// AdvanceOneTerm adds the next positive and negative term.
func (s *NilakanthaSeries) AdvanceOneTerm() {
	s.value += nilakanthaTerm(s.n)
	s.n++
	s.value -= nilakanthaTerm(s.n)
	s.n++
}

// nilakanthaTerm returns 4/((2n)(2n+1)(2n+2)) evaluated in floating point so
// that the product cannot overflow an integer type.
func nilakanthaTerm(n uint64) float64 {
	k := 2 * float64(n)
	return 4 / (k * (k + 1) * (k + 2))
}

// CurrentValue returns the current approximation.
func (s *NilakanthaSeries) CurrentValue() float64 { return s.value }

// Terms returns the number of terms accumulated, including the leading 3.
func (s *NilakanthaSeries) Terms() uint64 { return s.n }

// HasReachedTolerance reports whether the value is within epsilon of target.
func (s *NilakanthaSeries) HasReachedTolerance(target, epsilon float64) bool {
	return withinTolerance(s.value, target, epsilon)
}

func saturatingTerms(pairs uint64) uint64 {
	if pairs > (math.MaxUint64-1)/2 {
		return math.MaxUint64
	}
	return 2*pairs + 1
}
