package models

import (
	"time"

	"github.com/google/uuid"
)

// PenaltyTier is a coarse bucket derived from a client's penalty count.
// It drives filtering and badges only, no business rule hangs off it.
type PenaltyTier string

const (
	PenaltyNone   PenaltyTier = "none"
	PenaltyLow    PenaltyTier = "low"
	PenaltyMedium PenaltyTier = "medium"
	PenaltyHigh   PenaltyTier = "high"
)

// TierForPenalty maps a numeric penalty count to its tier:
// 0 is none, (0,2] low, (2,5] medium, above 5 high.
func TierForPenalty(penalty float64) PenaltyTier {
	switch {
	case penalty <= 0:
		return PenaltyNone
	case penalty <= 2:
		return PenaltyLow
	case penalty <= 5:
		return PenaltyMedium
	default:
		return PenaltyHigh
	}
}

type Client struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DNI       int64     `json:"dni" db:"dni"`
	Penalty   float64   `json:"penalty" db:"penalty"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Tier returns the client's penalty tier
func (c *Client) Tier() PenaltyTier {
	return TierForPenalty(c.Penalty)
}

// ClientSearchFilter holds filter criteria for client queries
type ClientSearchFilter struct {
	Tier   *PenaltyTier `json:"tier,omitempty"`
	Limit  int          `json:"limit,omitempty"`
	Offset int          `json:"offset,omitempty"`
}
