package snake

import "time"

// Loop drives a session at its tick interval from arbitrary frame times.
// Time only accumulates while the session is running, so pausing or
// finishing drops any partially elapsed tick.
type Loop struct {
	session  *Session
	interval time.Duration
	acc      time.Duration
}

// NewLoop creates a loop for the session.
func NewLoop(s *Session) *Loop {
	return &Loop{
		session:  s,
		interval: s.Difficulty().TickInterval(),
	}
}

// Interval returns the tick interval.
func (l *Loop) Interval() time.Duration { return l.interval }

// Update feeds dt of wall time into the loop and runs every tick that became
// due. It stops at the first terminal event.
func (l *Loop) Update(dt time.Duration) []Event {
	if !l.session.Running() {
		l.acc = 0
		return nil
	}

	l.acc += dt
	var events []Event
	for l.acc >= l.interval && l.session.Running() {
		l.acc -= l.interval
		ev := l.session.Tick()
		events = append(events, ev)
		if ev.Terminal() {
			l.acc = 0
			break
		}
	}
	return events
}
