package animation

// Status is the lifecycle state of a requested transition.
type Status int

const (
	Pending Status = iota
	Completed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Handle tracks one transition request. Its completion callback runs at
// most once, and never after Cancel or after a newer request replaced it.
type Handle struct {
	status     Status
	done       chan struct{}
	onComplete func()
}

func newHandle(onComplete func()) *Handle {
	return &Handle{done: make(chan struct{}), onComplete: onComplete}
}

// Status reports whether the transition is still running, finished, or was
// cancelled.
func (h *Handle) Status() Status { return h.status }

// Done is closed once the handle leaves Pending, whichever way it ends.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Cancel abandons the transition. The orientation stays wherever the last
// tick left it.
func (h *Handle) Cancel() {
	h.finish(Cancelled)
}

func (h *Handle) complete() {
	if h.finish(Completed) && h.onComplete != nil {
		h.onComplete()
	}
}

func (h *Handle) finish(s Status) bool {
	if h.status != Pending {
		return false
	}
	h.status = s
	close(h.done)
	return true
}
