package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const EocSchemaVersion = 1

// Eoc is an end-of-call report submitted by a closer after a sales call.
// There is no external identifier; two submissions are the same report when
// the six key fields (dateOfCall, calendar, fullName, phoneNumber,
// emailAddress, callOutcome) all match, which the composite unique index
// enforces. DateOfCall stays string-typed; the form upstream does not
// guarantee any calendar format.
type Eoc struct {
	ID            string `json:"id" gorm:"primaryKey;type:uuid"`
	DateOfCall    string `json:"dateOfCall" gorm:"not null;index;uniqueIndex:idx_eocs_natural_key,priority:1"`
	Calendar      string `json:"calendar" gorm:"index;uniqueIndex:idx_eocs_natural_key,priority:2"`
	FullName      string `json:"fullName" gorm:"index;uniqueIndex:idx_eocs_natural_key,priority:3"`
	PhoneNumber   string `json:"phoneNumber" gorm:"index;uniqueIndex:idx_eocs_natural_key,priority:4"`
	EmailAddress  string `json:"emailAddress" gorm:"index;uniqueIndex:idx_eocs_natural_key,priority:5"`
	CallOutcome   string `json:"callOutcome" gorm:"uniqueIndex:idx_eocs_natural_key,priority:6"` // free text, not enumerated
	Notes         string `json:"notes"`
	Closer        string `json:"closer"`
	Objections    string `json:"objections"`
	CallRecording string `json:"callRecording"`

	RawWebhookData datatypes.JSON `json:"rawWebhookData" gorm:"type:jsonb"`

	SchemaVersion int       `json:"-" gorm:"default:1"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (e *Eoc) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
