package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated EventType = "employee_created"
	EventEmployeeUpdated EventType = "employee_updated"
	EventEmployeeDeleted EventType = "employee_deleted"
)

// Event represents a change applied to an employee record.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID int64       `json:"employee_id"`
	ActorID    int64       `json:"actor_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload,omitempty"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	Email        string `json:"email"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

// EmployeeUpdatedPayload lists the columns written by a partial update.
type EmployeeUpdatedPayload struct {
	Fields []string `json:"fields"`
}
