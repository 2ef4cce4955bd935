package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CallSchemaVersion is stamped onto every row written by the current
// normalizer so future shape changes can migrate stored data instead of
// silently reinterpreting it.
const CallSchemaVersion = 1

// Valid call outcomes as delivered by the dialer platform.
const (
	OutcomeCompleted     = "completed"
	OutcomeNoAnswer      = "no_answer"
	OutcomeVoicemail     = "voicemail"
	OutcomeInterested    = "interested"
	OutcomeNotInterested = "not_interested"
	OutcomeCallback      = "callback"
	OutcomeQualified     = "qualified"
	OutcomeNotQualified  = "not_qualified"
)

// CallOutcomes lists every accepted outcome value.
var CallOutcomes = []string{
	OutcomeCompleted, OutcomeNoAnswer, OutcomeVoicemail, OutcomeInterested,
	OutcomeNotInterested, OutcomeCallback, OutcomeQualified, OutcomeNotQualified,
}

// Call is one logged sales call event received from the dialer webhook.
// CallID is the external natural key; repeated deliveries for the same
// CallID overwrite the mutable fields in place.
type Call struct {
	ID            string                      `json:"id" gorm:"primaryKey;type:uuid"`
	CallID        string                      `json:"callId" gorm:"uniqueIndex;not null"`
	SalesRep      string                      `json:"salesRep" gorm:"not null;index"`
	SalesRepID    string                      `json:"salesRepId"`
	CustomerName  string                      `json:"customerName"`
	CustomerPhone string                      `json:"customerPhone"`
	Outcome       string                      `json:"outcome" gorm:"default:completed;index"`
	Revenue       float64                     `json:"revenue" gorm:"type:numeric(12,2);default:0"`
	CallDate      time.Time                   `json:"callDate" gorm:"not null;index"`
	Duration      int                         `json:"duration" gorm:"default:0"` // seconds
	Notes         string                      `json:"notes"`
	Tags          datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`

	// Verbatim copy of the inbound event, kept for audit replay only.
	RawWebhookData datatypes.JSON `json:"rawWebhookData" gorm:"type:jsonb"`

	SchemaVersion int       `json:"-" gorm:"default:1"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (c *Call) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
