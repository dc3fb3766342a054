package audit

import "time"

// Entry is one activity-log record. Action is a dotted tag such as
// "overtime.decision"; Metadata carries the affected ids and key field
// values of the operation.
type Entry struct {
	ID         string
	ActorUID   string
	ActorEmail string
	Action     string
	TargetID   string
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}
