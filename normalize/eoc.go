package normalize

import (
	"encoding/json"

	"salesdash-backend/models"
)

// Eoc maps an end-of-call report webhook into an Eoc record. The workflow
// builder wraps the form fields in a customData sub-object; older workflow
// versions sent them at the top level, so that is kept as a fallback.
func Eoc(payload map[string]any) models.Eoc {
	raw, _ := json.Marshal(payload)

	fields := subObject(payload, "customData")
	if fields == nil {
		fields = payload
	}

	return models.Eoc{
		DateOfCall:     pickString(fields, "dateOfCall"),
		Calendar:       pickString(fields, "calendar"),
		FullName:       pickString(fields, "fullName"),
		PhoneNumber:    pickString(fields, "phoneNumber"),
		EmailAddress:   pickString(fields, "emailAddress"),
		Notes:          pickString(fields, "notes"),
		Closer:         pickString(fields, "closer"),
		CallOutcome:    pickString(fields, "callOutcome"),
		Objections:     pickString(fields, "objections"),
		CallRecording:  pickString(fields, "callRecording"),
		RawWebhookData: raw,
		SchemaVersion:  models.EocSchemaVersion,
	}
}
