// Package sim provides the shared core of every classroom simulation:
// a parameter set with per-parameter valid ranges, a pure model interface,
// and the animation loop that advances simulated time on external ticks.
//
//   - [Params]: named, range-clamped values owned by the controller
//   - [Model]: pure mapping (params, time) -> derived state
//   - [Loop]: explicit {Idle, Running} state machine driven by Tick
//   - [Sample]: evaluate a model over a fixed step grid
//
// The loop owns no timer. The frontend schedules ticks (the TUI uses
// tea.Tick) and the loop stays single-threaded: one tick is fully processed
// before the next arrives, so no partial-tick state can leak.
//
// Derived state is always reproducible from (params, time) alone. Models
// that need randomness derive it from a seed parameter.
package sim
