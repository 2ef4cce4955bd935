package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salesdash-backend/models"
)

// gormStore is the Postgres-backed Store.
type gormStore struct {
	db *gorm.DB
}

// New wraps a GORM connection in a Store.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Natural-key and replaced-column sets per kind. The upserts below rely on
// the matching unique indexes created at migration time; an absent key field
// is stored as the empty string, so two deliveries both missing it still
// land on the same row.
var (
	callConflictColumns = []clause.Column{{Name: "call_id"}}
	callUpdateColumns   = []string{
		"sales_rep", "sales_rep_id", "customer_name", "customer_phone",
		"outcome", "revenue", "call_date", "duration", "notes", "tags",
		"raw_webhook_data", "schema_version", "updated_at",
	}

	eocConflictColumns = []clause.Column{
		{Name: "date_of_call"}, {Name: "calendar"}, {Name: "full_name"},
		{Name: "phone_number"}, {Name: "email_address"}, {Name: "call_outcome"},
	}
	eocUpdateColumns = []string{
		"notes", "closer", "objections", "call_recording",
		"raw_webhook_data", "schema_version", "updated_at",
	}

	bookedCallConflictColumns = []clause.Column{
		{Name: "email"}, {Name: "calendar_start_time"},
	}
	bookedCallUpdateColumns = []string{
		"full_name", "phone", "contact_source",
		"user_first_name", "user_last_name", "user_email",
		"calendar_title", "calendar_timezone", "calendar_end_time",
		"calendar_status", "calendar_appointment_status", "calendar_address",
		"calendar_date_created", "calendar_created_by",
		"calendar_created_by_user_id", "calendar_id", "calendar_name",
		"raw_webhook_data", "schema_version", "updated_at",
	}
)

// UpsertCall writes the call as one atomic insert-or-update keyed on the
// external call identifier. Doing it in a single statement closes the race
// where two concurrent deliveries of the same event both pass a lookup and
// both insert.
func (s *gormStore) UpsertCall(ctx context.Context, call *models.Call) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   callConflictColumns,
		DoUpdates: clause.AssignmentColumns(callUpdateColumns),
	}).Create(call).Error
}

func (s *gormStore) UpsertEoc(ctx context.Context, eoc *models.Eoc) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   eocConflictColumns,
		DoUpdates: clause.AssignmentColumns(eocUpdateColumns),
	}).Create(eoc).Error
}

func (s *gormStore) UpsertBookedCall(ctx context.Context, booked *models.BookedCall) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   bookedCallConflictColumns,
		DoUpdates: clause.AssignmentColumns(bookedCallUpdateColumns),
	}).Create(booked).Error
}

func (s *gormStore) ListCalls(ctx context.Context, filter CallFilter) ([]models.Call, error) {
	q := s.db.WithContext(ctx).Model(&models.Call{})

	if filter.StartDate != nil {
		q = q.Where("call_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("call_date <= ?", *filter.EndDate)
	}
	if filter.SalesRep != "" {
		q = q.Where("sales_rep = ?", filter.SalesRep)
	}
	if filter.Outcome != "" {
		q = q.Where("outcome = ?", filter.Outcome)
	}

	var calls []models.Call
	err := q.Order("call_date DESC").Limit(filter.EffectiveLimit()).Find(&calls).Error
	return calls, err
}

func (s *gormStore) ListEocs(ctx context.Context, limit int) ([]models.Eoc, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var eocs []models.Eoc
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&eocs).Error
	return eocs, err
}

func (s *gormStore) ListBookedCalls(ctx context.Context, limit int) ([]models.BookedCall, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var booked []models.BookedCall
	err := s.db.WithContext(ctx).Order("calendar_start_time DESC").Limit(limit).Find(&booked).Error
	return booked, err
}

func (s *gormStore) CallStats(ctx context.Context) (Stats, error) {
	var stats Stats
	db := s.db.WithContext(ctx).Model(&models.Call{})

	if err := db.Count(&stats.TotalCalls).Error; err != nil {
		return Stats{}, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Call{}).
		Where("outcome = ?", models.OutcomeCompleted).
		Count(&stats.CompletedCalls).Error; err != nil {
		return Stats{}, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Call{}).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (s *gormStore) DeleteCall(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Call{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
