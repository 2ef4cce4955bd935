package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const BookedCallSchemaVersion = 1

// BookedCall is a scheduled appointment created through the booking
// calendar. Start/end times stay string-typed exactly as the calendar
// platform sends them (ISO strings), so the (email, calendarStartTime)
// natural key matches on the verbatim value. A later delivery for the same
// pair is a reschedule or status change and updates the row in place.
type BookedCall struct {
	ID            string `json:"id" gorm:"primaryKey;type:uuid"`
	FullName      string `json:"fullName" gorm:"not null;index"`
	Email         string `json:"email" gorm:"index;uniqueIndex:idx_booked_calls_natural_key,priority:1"`
	Phone         string `json:"phone" gorm:"index"`
	ContactSource string `json:"contactSource"`

	// Assigned user (who owns the appointment).
	UserFirstName string `json:"userFirstName"`
	UserLastName  string `json:"userLastName"`
	UserEmail     string `json:"userEmail" gorm:"index"`

	// Calendar/appointment block.
	CalendarTitle             string `json:"calendarTitle"`
	CalendarTimezone          string `json:"calendarTimezone"`
	CalendarStartTime         string `json:"calendarStartTime" gorm:"index;uniqueIndex:idx_booked_calls_natural_key,priority:2"`
	CalendarEndTime           string `json:"calendarEndTime"`
	CalendarStatus            string `json:"calendarStatus" gorm:"index"`
	CalendarAppointmentStatus string `json:"calendarAppointmentStatus"`
	CalendarAddress           string `json:"calendarAddress"`
	CalendarDateCreated       string `json:"calendarDateCreated"`
	CalendarCreatedBy         string `json:"calendarCreatedBy"`
	CalendarCreatedByUserID   string `json:"calendarCreatedByUserId"`
	CalendarID                string `json:"calendarId" gorm:"index"`
	CalendarName              string `json:"calendarName"`

	RawWebhookData datatypes.JSON `json:"rawWebhookData" gorm:"type:jsonb"`

	SchemaVersion int       `json:"-" gorm:"default:1"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (b *BookedCall) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
