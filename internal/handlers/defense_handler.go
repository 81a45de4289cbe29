package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/models"
	"capstone-service/internal/services"
)

type DefenseHandler struct {
	defenseService *services.DefenseService
	projectService *services.ProjectService
	log            *logrus.Logger
}

func NewDefenseHandler(defenseService *services.DefenseService, projectService *services.ProjectService, log *logrus.Logger) *DefenseHandler {
	return &DefenseHandler{
		defenseService: defenseService,
		projectService: projectService,
		log:            log,
	}
}

// ScheduleRequest is the body of a defense scheduling call.
type ScheduleRequest struct {
	DateTime     time.Time `json:"date_time"`
	PanelMembers []string  `json:"panel_members"`
	Documenter   string    `json:"documenter"`
	Venue        string    `json:"venue"`
}

// ResultRequest is the body of a defense result call.
type ResultRequest struct {
	Result models.DefenseResult `json:"result"`
}

// Schedule schedules a defense for a project
// @Summary Schedule a defense
// @Description Validate date, venue, panel composition, and day capacity, then commit the defense sub-record and approve the project
// @Tags defenses
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Param schedule body handlers.ScheduleRequest true "Defense details"
// @Success 200 {object} services.ScheduleResult "Scheduled defense, with a warning when the day is near capacity"
// @Failure 400 {object} map[string]interface{} "Missing venue, panel, or documenter"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 409 {object} map[string]interface{} "Past date, capacity reached, or panel not distinct"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/defense [post]
func (h *DefenseHandler) Schedule(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	result, err := h.defenseService.Schedule(id, req.DateTime, services.DefenseDetails{
		PanelMembers: req.PanelMembers,
		Documenter:   req.Documenter,
		Venue:        req.Venue,
	})
	if err != nil {
		h.log.WithError(err).WithField("project_id", id).Warn("defense scheduling rejected")
		return respondError(c, err)
	}
	return c.JSON(result)
}

// SetResult records the judged outcome of a scheduled defense
// @Summary Record a defense result
// @Description A pass approves the project and advances its progress label; a fail rejects it
// @Tags defenses
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Param result body handlers.ResultRequest true "passed or failed"
// @Success 200 {object} map[string]interface{} "Fresh project list"
// @Failure 400 {object} map[string]interface{} "Unknown result or no scheduled defense"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/defense/result [put]
func (h *DefenseHandler) SetResult(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	var req ResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	projects, err := h.projectService.SetDefenseResult(id, req.Result)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// Availability reports the defense load for a calendar day
// @Summary Check day availability
// @Description Returns the number of defenses on the day and whether another may be scheduled
// @Tags defenses
// @Accept json
// @Produce json
// @Param date query string true "Target date (RFC 3339)"
// @Success 200 {object} map[string]interface{} "count and available"
// @Failure 400 {object} map[string]interface{} "Missing or malformed date"
// @Router /defenses/availability [get]
func (h *DefenseHandler) Availability(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	day, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid date, expected RFC 3339",
			"details": err.Error(),
		})
	}

	count, err := h.defenseService.CountDefensesOnDay(day)
	if err != nil {
		h.log.WithError(err).Warn("defense count failed")
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count":     count,
		"available": h.defenseService.CheckDayAvailability(day),
	})
}
