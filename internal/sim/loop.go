package sim

// LoopState is the animation loop's phase.
type LoopState int

const (
	Idle LoopState = iota
	Running
)

func (s LoopState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Loop drives periodic recomputation for one model. The loop is an explicit
// two-state machine: Idle->Running on Start, Running->Idle on Stop or when
// the model reports a terminal condition. Each Tick is atomic relative to
// the single rendering thread that calls it.
type Loop struct {
	model  Model
	params *Params
	state  LoopState
	t      float64
	speed  float64
	last   State
}

func NewLoop(m Model) *Loop {
	l := &Loop{
		model:  m,
		params: NewParams(m.Specs()),
		speed:  1.0,
	}
	l.last = m.Eval(l.params, 0)
	return l
}

func (l *Loop) Model() Model      { return l.model }
func (l *Loop) Params() *Params   { return l.params }
func (l *Loop) State() LoopState  { return l.state }
func (l *Loop) Running() bool     { return l.state == Running }
func (l *Loop) Time() float64     { return l.t }
func (l *Loop) Last() State       { return l.last }
func (l *Loop) Speed() float64    { return l.speed }
func (l *Loop) SetSpeed(s float64) {
	if s > 0 {
		l.speed = s
	}
}

func (l *Loop) Start() { l.state = Running }
func (l *Loop) Stop()  { l.state = Idle }

// Toggle flips between Idle and Running.
func (l *Loop) Toggle() {
	if l.state == Running {
		l.state = Idle
	} else {
		l.state = Running
	}
}

// Tick advances simulated time by dt scaled by the loop speed and
// recomputes derived state. A tick while Idle is a no-op and returns the
// last computed state unchanged. When the model reports completion the
// loop stops, leaving the terminal state visible.
func (l *Loop) Tick(dt float64) State {
	if l.state != Running {
		return l.last
	}
	l.t += dt * l.speed
	l.last = l.model.Eval(l.params, l.t)
	if l.model.Done(l.params, l.t) {
		l.state = Idle
	}
	return l.last
}

// Eval recomputes derived state at the current time without advancing it.
// Controllers call this after a parameter change while paused.
func (l *Loop) Eval() State {
	l.last = l.model.Eval(l.params, l.t)
	return l.last
}

// Reset stops the loop, zeroes the step counter, restores parameter
// defaults, and recomputes state once.
func (l *Loop) Reset() State {
	l.state = Idle
	l.t = 0
	l.params.Reset()
	l.last = l.model.Eval(l.params, 0)
	return l.last
}
