package models

// Status is a free-text task state. The four constants are the values the
// application writes; anything else read from storage is preserved as is.
type Status string

const (
	StatusTodo       Status = "待完成"
	StatusInProgress Status = "进行中"
	StatusDone       Status = "已完成"
	StatusOnHold     Status = "搁置"

	// legacyStatusDone is still counted as done in statistics
	legacyStatusDone Status = "DONE"
)

// KnownStatuses lists the statuses offered to users, in display order
var KnownStatuses = []Status{StatusTodo, StatusInProgress, StatusDone, StatusOnHold}

// IsDone reports whether s marks a completed task
func (s Status) IsDone() bool {
	return s == StatusDone || s == legacyStatusDone
}

// Toggled returns the status a done/undone toggle moves to
func (s Status) Toggled() Status {
	if s == StatusDone {
		return StatusTodo
	}
	return StatusDone
}

func (s Status) String() string {
	return string(s)
}
