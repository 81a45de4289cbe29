package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/services"
)

type ManuscriptHandler struct {
	manuscriptService *services.ManuscriptService
	projectService    *services.ProjectService
	log               *logrus.Logger
}

func NewManuscriptHandler(manuscriptService *services.ManuscriptService, projectService *services.ProjectService, log *logrus.Logger) *ManuscriptHandler {
	return &ManuscriptHandler{
		manuscriptService: manuscriptService,
		projectService:    projectService,
		log:               log,
	}
}

// Upload archives a manuscript under a project
// @Summary Upload a manuscript
// @Description Upload a pdf/doc/docx, or a zip bundle which is unpacked and each contained document stored
// @Tags manuscripts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Param file formData file true "Manuscript file or bundle"
// @Success 201 {array} models.Manuscript "Stored manuscripts"
// @Failure 400 {object} map[string]interface{} "Unsupported format or empty bundle"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/manuscripts [post]
func (h *ManuscriptHandler) Upload(c *fiber.Ctx) error {
	projectID, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}

	// The project must still exist before anything is written.
	if _, err := h.projectService.GetProject(projectID); err != nil {
		return respondError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Missing file upload",
			"details": err.Error(),
		})
	}

	manuscripts, err := h.manuscriptService.Upload(projectID, fileHeader)
	if err != nil {
		h.log.WithError(err).WithField("project_id", projectID).Warn("manuscript upload failed")
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(manuscripts)
}

// List returns the manuscripts archived under a project
// @Summary List manuscripts for a project
// @Tags manuscripts
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {array} models.Manuscript "Manuscripts, newest first"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/manuscripts [get]
func (h *ManuscriptHandler) List(c *fiber.Ctx) error {
	projectID, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	manuscripts, err := h.manuscriptService.ListForProject(projectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(manuscripts)
}

// Download streams a stored manuscript
// @Summary Download a manuscript
// @Tags manuscripts
// @Produce octet-stream
// @Param id path string true "Manuscript ID" Format(uuid)
// @Success 200 {file} binary "Manuscript content"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Manuscript not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /manuscripts/{id}/download [get]
func (h *ManuscriptHandler) Download(c *fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid UUID",
			"details": err.Error(),
		})
	}

	reader, manuscript, err := h.manuscriptService.Download(id)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, manuscript.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+manuscript.OriginalFilename+`"`)
	return c.SendStream(reader)
}

// Delete removes a manuscript
// @Summary Delete a manuscript
// @Tags manuscripts
// @Produce json
// @Param id path string true "Manuscript ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Manuscript deleted"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Manuscript not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /manuscripts/{id} [delete]
func (h *ManuscriptHandler) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid UUID",
			"details": err.Error(),
		})
	}

	if err := h.manuscriptService.Delete(id); err != nil {
		h.log.WithError(err).WithField("manuscript_id", id).Warn("manuscript delete failed")
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Manuscript deleted successfully",
		"id":      id.String(),
	})
}
