package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/services"
)

type FacultyHandler struct {
	facultyService *services.FacultyService
	log            *logrus.Logger
}

func NewFacultyHandler(facultyService *services.FacultyService, log *logrus.Logger) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService, log: log}
}

// AddFacultyRequest is the body of a faculty registration call.
type AddFacultyRequest struct {
	Name       string `json:"name"`
	College    string `json:"college"`
	Department string `json:"department"`
}

// ListFaculty returns all faculty members
// @Summary List faculty members
// @Tags faculty
// @Accept json
// @Produce json
// @Success 200 {array} models.FacultyMember "All faculty members"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty [get]
func (h *FacultyHandler) ListFaculty(c *fiber.Ctx) error {
	members, err := h.facultyService.ListFaculty()
	if err != nil {
		h.log.WithError(err).Error("could not list faculty")
		return respondError(c, err)
	}
	return c.JSON(members)
}

// AddFaculty registers a new faculty member
// @Summary Add a faculty member
// @Description Validates the college enumeration, the college's department list, and (name, department) uniqueness
// @Tags faculty
// @Accept json
// @Produce json
// @Param member body handlers.AddFacultyRequest true "Faculty member data"
// @Success 201 {object} models.FacultyMember "Faculty member created"
// @Failure 400 {object} map[string]interface{} "Unknown college/department or duplicate member"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty [post]
func (h *FacultyHandler) AddFaculty(c *fiber.Ctx) error {
	var req AddFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	member, err := h.facultyService.AddFaculty(req.Name, req.College, req.Department)
	if err != nil {
		h.log.WithError(err).Warn("could not add faculty member")
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}
