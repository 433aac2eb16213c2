package cpu

// State is the processor run state.
type State int

const (
	STATE_ERROR   = State(-1) // Faulted; only a reset leaves this state.
	STATE_IDLE    = State(0)  // Stopped, after power on or HLT.
	STATE_RUNNING = State(1)  // Executing instructions.
	STATE_WAITING = State(2)  // Reserved.
)

func (st State) String() string {
	switch st {
	case STATE_ERROR:
		return f("error")
	case STATE_IDLE:
		return f("idle")
	case STATE_RUNNING:
		return f("running")
	case STATE_WAITING:
		return f("waiting")
	}
	return f("state %d", int(st))
}
