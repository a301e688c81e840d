package domain

import (
	"time"

	"github.com/google/uuid"
)

// Debate is immutable once persisted. Scores, winner and feedback come from
// the judging service, never from the client.
type Debate struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Title     string    `json:"title"`
	SideA     []string  `json:"sideA"`
	SideB     []string  `json:"sideB"`
	ScoreA    float64   `json:"scoreA"`
	ScoreB    float64   `json:"scoreB"`
	Winner    string    `json:"winner"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
}
