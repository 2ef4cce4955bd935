package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"salesdash-backend/normalize"
	"salesdash-backend/store"
)

// Handler carries the HTTP handlers' dependencies.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

// New creates a Handler backed by the given store.
func New(s store.Store, log *zap.Logger) *Handler {
	return &Handler{store: s, log: log}
}

// The webhook endpoints below always answer HTTP 200. The CRM platform
// retries aggressively on non-2xx, and replaying a payload we already failed
// on only amplifies the failure; the success flag in the body is the only
// signal of internal outcome.

func (h *Handler) ackFailure(c *fiber.Ctx, err error) error {
	h.log.Error("webhook processing failed",
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"message": "Webhook received but error occurred",
		"error":   err.Error(),
	})
}

// ReceiveCall handles POST /ghl-call.
func (h *Handler) ReceiveCall(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return h.ackFailure(c, err)
	}

	call := normalize.Call(payload)
	if err := h.store.UpsertCall(c.Context(), &call); err != nil {
		return h.ackFailure(c, err)
	}

	h.log.Info("call webhook processed",
		zap.String("callId", call.CallID),
		zap.String("salesRep", call.SalesRep),
		zap.String("outcome", call.Outcome))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Webhook received and processed",
		"callId":  call.CallID,
	})
}

// ReceiveEoc handles POST /eoc-created.
func (h *Handler) ReceiveEoc(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return h.ackFailure(c, err)
	}

	eoc := normalize.Eoc(payload)
	if err := h.store.UpsertEoc(c.Context(), &eoc); err != nil {
		return h.ackFailure(c, err)
	}

	h.log.Info("eoc webhook processed",
		zap.String("dateOfCall", eoc.DateOfCall),
		zap.String("fullName", eoc.FullName),
		zap.String("closer", eoc.Closer))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Webhook received and processed",
		"dateOfCall": eoc.DateOfCall,
	})
}

// ReceiveBookedCall handles POST /booked-call-created.
func (h *Handler) ReceiveBookedCall(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return h.ackFailure(c, err)
	}

	booked := normalize.BookedCall(payload)
	if err := h.store.UpsertBookedCall(c.Context(), &booked); err != nil {
		return h.ackFailure(c, err)
	}

	h.log.Info("booked call webhook processed",
		zap.String("email", booked.Email),
		zap.String("startTime", booked.CalendarStartTime),
		zap.String("status", booked.CalendarAppointmentStatus))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":         true,
		"message":         "Webhook received and processed",
		"calendarId":      booked.CalendarID,
		"appointmentTime": booked.CalendarStartTime,
	})
}
