package task

import "hrdesk/internal/platform/wiretime"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     wiretime.Nanos `json:"dueDate"`
	Priority    Priority       `json:"priority"`
	AssignedTo  []string       `json:"assignedTo"`
	IsComplete  bool           `json:"isComplete"`
	CreatedAt   wiretime.Nanos `json:"createdAt"`
}

// Input is the full set of editable fields, used for both create and update.
type Input struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	DueDate     *wiretime.Nanos `json:"dueDate" validate:"required"`
	Priority    Priority        `json:"priority" validate:"required,oneof=low medium high"`
	AssignedTo  []string        `json:"assignedTo" validate:"dive,uuid"`
	IsComplete  bool            `json:"isComplete"`
}
