package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salesdash-backend/middlewares"
	"salesdash-backend/store"
	"salesdash-backend/utils"
)

// The read surface serves the internal dashboard, so failures here are loud:
// bad input is 4xx/422 and storage errors bubble to the central error
// handler as 500.

type callListQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	SalesRep  string `query:"salesRep"`
	Outcome   string `query:"outcome" validate:"omitempty,oneof=completed no_answer voicemail interested not_interested callback qualified not_qualified"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=10000"`
}

type recentListQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// GetCalls handles GET /calls.
func (h *Handler) GetCalls(c *fiber.Ctx) error {
	var q callListQuery
	if err := middlewares.BindQueryAndValidate(c, &q); err != nil {
		return err
	}

	filter := store.CallFilter{
		SalesRep: q.SalesRep,
		Outcome:  q.Outcome,
		Limit:    q.Limit,
	}
	if q.StartDate != "" {
		t, err := utils.ParseDate(q.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid startDate")
		}
		filter.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := utils.ParseDateEnd(q.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid endDate")
		}
		filter.EndDate = &t
	}

	calls, err := h.store.ListCalls(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(calls)
}

// GetEocs handles GET /eocs.
func (h *Handler) GetEocs(c *fiber.Ctx) error {
	var q recentListQuery
	if err := middlewares.BindQueryAndValidate(c, &q); err != nil {
		return err
	}

	eocs, err := h.store.ListEocs(c.Context(), q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(eocs)
}

// GetBookedCalls handles GET /booked-calls.
func (h *Handler) GetBookedCalls(c *fiber.Ctx) error {
	var q recentListQuery
	if err := middlewares.BindQueryAndValidate(c, &q); err != nil {
		return err
	}

	booked, err := h.store.ListBookedCalls(c.Context(), q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(booked)
}

// GetStats handles GET /stats.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.store.CallStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// DeleteCall handles DELETE /calls/:id. Administrative/testing only.
func (h *Handler) DeleteCall(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.DeleteCall(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "call not found")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Call deleted",
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
