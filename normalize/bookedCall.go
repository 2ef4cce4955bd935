package normalize

import (
	"encoding/json"

	"salesdash-backend/models"
)

// BookedCall maps a calendar booking webhook into a BookedCall record. The
// platform sends human-readable keys ("Full Name", "User Email", ...) split
// across the top level and nested user/calendar objects; everything is
// flattened into the stored shape. "Calendar Appoinment Status" is spelled
// exactly as the platform sends it.
func BookedCall(payload map[string]any) models.BookedCall {
	raw, _ := json.Marshal(payload)

	user := subObject(payload, "user")
	if user == nil {
		user = payload
	}
	calendar := subObject(payload, "calendar")
	if calendar == nil {
		calendar = payload
	}

	return models.BookedCall{
		FullName:      pickString(payload, "Full Name", "full_name"),
		Email:         pickString(payload, "Email", "email"),
		Phone:         pickString(payload, "Phone", "phone"),
		ContactSource: pickString(payload, "Contact Source", "contact_source"),

		UserFirstName: pickString(user, "User First Name"),
		UserLastName:  pickString(user, "User Last Name"),
		UserEmail:     pickString(user, "User Email"),

		CalendarTitle:             pickString(calendar, "Calendar Title"),
		CalendarTimezone:          pickString(calendar, "Calendar Selected Timezone"),
		CalendarStartTime:         pickString(calendar, "Calendar Start Time"),
		CalendarEndTime:           pickString(calendar, "Calendar End Time"),
		CalendarStatus:            pickString(calendar, "Calendar Status"),
		CalendarAppointmentStatus: pickString(calendar, "Calendar Appoinment Status"),
		CalendarAddress:           pickString(calendar, "Calendar Address"),
		CalendarDateCreated:       pickString(calendar, "Calendar Date Created"),
		CalendarCreatedBy:         pickString(calendar, "Calendar Created By"),
		CalendarCreatedByUserID:   pickString(calendar, "Calendar Created By User Id"),
		CalendarID:                pickString(calendar, "Calendar ID"),
		CalendarName:              pickString(calendar, "Calendar Calendar Name"),

		RawWebhookData: raw,
		SchemaVersion:  models.BookedCallSchemaVersion,
	}
}
