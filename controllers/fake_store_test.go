package controllers_test

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salesdash-backend/models"
	"salesdash-backend/store"
)

// fakeStore is an in-memory Store with the same natural-key upsert
// semantics as the Postgres implementation. Setting failErr makes every
// operation fail, to exercise the failure paths.
type fakeStore struct {
	failErr error

	calls  map[string]models.Call
	eocs   map[string]models.Eoc
	booked map[string]models.BookedCall

	lastCallFilter store.CallFilter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		calls:  make(map[string]models.Call),
		eocs:   make(map[string]models.Eoc),
		booked: make(map[string]models.BookedCall),
	}
}

func eocKey(e *models.Eoc) string {
	return strings.Join([]string{
		e.DateOfCall, e.Calendar, e.FullName,
		e.PhoneNumber, e.EmailAddress, e.CallOutcome,
	}, "\x00")
}

func bookedCallKey(b *models.BookedCall) string {
	return b.Email + "\x00" + b.CalendarStartTime
}

func (f *fakeStore) UpsertCall(_ context.Context, c *models.Call) error {
	if f.failErr != nil {
		return f.failErr
	}
	if existing, ok := f.calls[c.CallID]; ok {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	} else if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.calls[c.CallID] = *c
	return nil
}

func (f *fakeStore) UpsertEoc(_ context.Context, e *models.Eoc) error {
	if f.failErr != nil {
		return f.failErr
	}
	key := eocKey(e)
	if existing, ok := f.eocs[key]; ok {
		e.ID = existing.ID
		e.CreatedAt = existing.CreatedAt
	} else if e.ID == "" {
		e.ID = uuid.NewString()
	}
	f.eocs[key] = *e
	return nil
}

func (f *fakeStore) UpsertBookedCall(_ context.Context, b *models.BookedCall) error {
	if f.failErr != nil {
		return f.failErr
	}
	key := bookedCallKey(b)
	if existing, ok := f.booked[key]; ok {
		b.ID = existing.ID
		b.CreatedAt = existing.CreatedAt
	} else if b.ID == "" {
		b.ID = uuid.NewString()
	}
	f.booked[key] = *b
	return nil
}

func (f *fakeStore) ListCalls(_ context.Context, filter store.CallFilter) ([]models.Call, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.lastCallFilter = filter

	out := make([]models.Call, 0, len(f.calls))
	for _, c := range f.calls {
		if filter.StartDate != nil && c.CallDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && c.CallDate.After(*filter.EndDate) {
			continue
		}
		if filter.SalesRep != "" && c.SalesRep != filter.SalesRep {
			continue
		}
		if filter.Outcome != "" && c.Outcome != filter.Outcome {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CallDate.After(out[j].CallDate) })
	if limit := filter.EffectiveLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) ListEocs(_ context.Context, limit int) ([]models.Eoc, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	if limit <= 0 {
		limit = store.DefaultRecentLimit
	}
	out := make([]models.Eoc, 0, len(f.eocs))
	for _, e := range f.eocs {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) ListBookedCalls(_ context.Context, limit int) ([]models.BookedCall, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	if limit <= 0 {
		limit = store.DefaultRecentLimit
	}
	out := make([]models.BookedCall, 0, len(f.booked))
	for _, b := range f.booked {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CalendarStartTime > out[j].CalendarStartTime })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) CallStats(_ context.Context) (store.Stats, error) {
	if f.failErr != nil {
		return store.Stats{}, f.failErr
	}
	var stats store.Stats
	for _, c := range f.calls {
		stats.TotalCalls++
		if c.Outcome == models.OutcomeCompleted {
			stats.CompletedCalls++
		}
		stats.TotalRevenue += c.Revenue
	}
	return stats, nil
}

func (f *fakeStore) DeleteCall(_ context.Context, id string) error {
	if f.failErr != nil {
		return f.failErr
	}
	for key, c := range f.calls {
		if c.ID == id {
			delete(f.calls, key)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
