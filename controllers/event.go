package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/e-Xiua/admin-events-api/models"
	"github.com/e-Xiua/admin-events-api/security"
	"github.com/e-Xiua/admin-events-api/services"
)

// Wired once in main before the routes go live.
var (
	Events *services.EventService
	Gate   *security.RoleGate
)

/* ---------- Role gating ---------- */

// RequireRole asks the identity service for the caller's role and lets the
// request through only if the role gate allows it. Identity infrastructure
// failures surface as 502, never as a denial.
func RequireRole(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if err := Gate.ValidateRole(token); err != nil {
		switch {
		case errors.Is(err, security.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		case errors.Is(err, security.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Role not authorized"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Identity service unavailable"})
		}
	}
	return c.Next()
}

/* ---------- Handlers for Event ---------- */

// GetAllEvents returns every stored event.
func GetAllEvents(c *fiber.Ctx) error {
	events, err := Events.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load events"})
	}
	dtos := make([]models.EventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, models.EventToDTO(&events[i]))
	}
	return c.JSON(dtos)
}

// GetEventByID returns one event or 404.
func GetEventByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}

	event, err := Events.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load event"})
	}
	return c.JSON(models.EventToDTO(event))
}

// CreateEvent stores a new event. The record always starts active.
func CreateEvent(c *fiber.Ctx) error {
	var dto models.EventDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	event, err := models.DTOToEvent(dto)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
	}
	event.ID = 0 // the store assigns identity

	created, err := Events.Create(event)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save event"})
	}
	return c.JSON(models.EventToDTO(created))
}

// ReplaceEvent overwrites the whole record with the supplied values. No
// notifications: only the partial-update path notifies.
func ReplaceEvent(c *fiber.Ctx) error {
	var dto models.EventDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	event, err := models.DTOToEvent(dto)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
	}

	saved, err := Events.Replace(event)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save event"})
	}
	return c.JSON(models.EventToDTO(saved))
}

// PatchEvent applies a partial update and triggers the notification fan-out.
func PatchEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}

	var patch services.Patch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updated, err := Events.PatchEvent(uint(id), patch)
	if err != nil {
		var invalid *services.InvalidFieldValueError
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		case errors.Is(err, services.ErrInvalidDateFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
		case errors.As(err, &invalid):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": invalid.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
		}
	}
	return c.JSON(models.EventToDTO(updated))
}

// DeleteEvent removes the record. Routes always place RequireRole before
// this handler.
func DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}
	if err := Events.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete event"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
