package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"salesdash-backend/models"
)

// callAliases is the candidate source-key table for Call attributes. New
// platform renames go here, not into the mapping code.
var callAliases = map[string][]string{
	"callId":        {"id", "call_id"},
	"salesRep":      {"user_name", "agent_name"},
	"salesRepId":    {"user_id", "agent_id"},
	"customerName":  {"contact_name", "customer_name"},
	"customerPhone": {"contact_phone", "phone"},
	"outcome":       {"call_status", "outcome"},
	"revenue":       {"deal_value", "revenue"},
	"callDate":      {"call_date"},
	"duration":      {"duration", "call_duration"},
	"notes":         {"notes", "description"},
	"tags":          {"tags"},
}

// Call maps a dialer webhook payload into a Call record. Missing fields get
// defaults; the event is never rejected here.
func Call(payload map[string]any) models.Call {
	raw, _ := json.Marshal(payload)

	callDate := pickTime(payload, callAliases["callDate"]...)
	if callDate.IsZero() {
		callDate = time.Now().UTC()
	}

	rep := pickString(payload, callAliases["salesRep"]...)
	if rep == "" {
		rep = "Unknown"
	}

	outcome := pickString(payload, callAliases["outcome"]...)
	if outcome == "" {
		outcome = models.OutcomeCompleted
	}

	call := models.Call{
		CallID:         pickString(payload, callAliases["callId"]...),
		SalesRep:       rep,
		SalesRepID:     pickString(payload, callAliases["salesRepId"]...),
		CustomerName:   pickString(payload, callAliases["customerName"]...),
		CustomerPhone:  pickString(payload, callAliases["customerPhone"]...),
		Outcome:        outcome,
		Revenue:        pickFloat(payload, callAliases["revenue"]...),
		CallDate:       callDate,
		Duration:       pickInt(payload, callAliases["duration"]...),
		Notes:          pickString(payload, callAliases["notes"]...),
		Tags:           pickStrings(payload, callAliases["tags"]...),
		RawWebhookData: raw,
		SchemaVersion:  models.CallSchemaVersion,
	}

	if call.CallID == "" {
		call.CallID = callFingerprint(call)
	}
	return call
}

// callFingerprint derives a deterministic identifier for events that arrive
// without one, so a retry of the same identifier-less event still collapses
// onto one row instead of fabricating a fresh key per delivery.
func callFingerprint(c models.Call) string {
	h := sha256.New()
	h.Write([]byte(c.SalesRep))
	h.Write([]byte{0})
	h.Write([]byte(c.CustomerName))
	h.Write([]byte{0})
	h.Write([]byte(c.CustomerPhone))
	h.Write([]byte{0})
	h.Write([]byte(c.CallDate.UTC().Format(time.RFC3339)))
	return "fp_" + hex.EncodeToString(h.Sum(nil)[:16])
}
