package jobrole

import "hrdesk/internal/platform/wiretime"

type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type JobRole struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    Location       `json:"location"`
	LinkedInURL string         `json:"linkedInUrl"`
	IsOpen      bool           `json:"isOpen"`
	CreatedAt   wiretime.Nanos `json:"createdAt"`
}

type CreateInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	LinkedInURL string   `json:"linkedInUrl" validate:"omitempty,url"`
}

// OpenCount is the payload of the public open-positions counter.
type OpenCount struct {
	Open int64 `json:"open,string"`
}
