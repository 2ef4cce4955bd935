// Package store persists the three webhook record kinds and serves the
// dashboard reads. Writes go through natural-key upserts so repeated
// delivery of the same external event never accumulates duplicate rows.
package store

import (
	"context"
	"time"

	"salesdash-backend/models"
)

// Default listing limits when the dashboard omits one.
const (
	DefaultCallLimit   = 1000
	DefaultRecentLimit = 10
)

// CallFilter narrows the call listing. Date bounds are inclusive.
type CallFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	SalesRep  string
	Outcome   string
	Limit     int
}

// EffectiveLimit returns the filter limit, falling back to DefaultCallLimit.
func (f CallFilter) EffectiveLimit() int {
	if f.Limit > 0 {
		return f.Limit
	}
	return DefaultCallLimit
}

// Stats is the dashboard headline aggregate.
type Stats struct {
	TotalCalls     int64   `json:"totalCalls"`
	CompletedCalls int64   `json:"completedCalls"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// Store is the persistence surface used by the HTTP handlers.
type Store interface {
	// Upserts write exactly one resulting row per natural key: insert when
	// the key is unseen, otherwise replace every non-key field in place.
	UpsertCall(ctx context.Context, call *models.Call) error
	UpsertEoc(ctx context.Context, eoc *models.Eoc) error
	UpsertBookedCall(ctx context.Context, booked *models.BookedCall) error

	ListCalls(ctx context.Context, filter CallFilter) ([]models.Call, error)
	ListEocs(ctx context.Context, limit int) ([]models.Eoc, error)
	ListBookedCalls(ctx context.Context, limit int) ([]models.BookedCall, error)
	CallStats(ctx context.Context) (Stats, error)
	DeleteCall(ctx context.Context, id string) error
}
