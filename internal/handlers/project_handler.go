package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/models"
	"capstone-service/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	log            *logrus.Logger
}

func NewProjectHandler(projectService *services.ProjectService, log *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, log: log}
}

// parseID parses the :id path parameter as a UUID.
func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// invalidUUID renders the shared bad-UUID response.
func invalidUUID(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": "Invalid UUID",
		"details": err.Error(),
	})
}

// CreateProject creates a new capstone project
// @Summary Create a new capstone project
// @Description Create a new project record; rejects titles similar to an existing project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body services.CreateProjectInput true "Project data"
// @Success 201 {object} map[string]interface{} "Project successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - Invalid project data or similar title"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var input services.CreateProjectInput
	if err := c.BodyParser(&input); err != nil {
		h.log.WithError(err).Warn("could not parse project data")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	project, projects, err := h.projectService.CreateProject(input)
	if err != nil {
		h.log.WithError(err).Warn("could not create project")
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"project":  project,
		"projects": projects,
	})
}

// ListProjects returns all projects
// @Summary List projects
// @Description Get all projects newest first, optionally filtered by lifecycle type
// @Tags projects
// @Accept json
// @Produce json
// @Param type query string false "Lifecycle type" Enums(proposal, final, inventory)
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projectType := models.ProjectType(c.Query("type"))
	projects, err := h.projectService.ListProjects(projectType)
	if err != nil {
		h.log.WithError(err).Error("could not list projects")
		return respondError(c, err)
	}
	return c.JSON(projects)
}

// GetProject returns a project by ID
// @Summary Get a project by ID
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} models.Project "Project found"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	project, err := h.projectService.GetProject(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// DeleteProject deletes a project
// @Summary Delete a project
// @Description Delete a project and its archived manuscripts
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Project deleted, fresh project list"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	projects, err := h.projectService.DeleteProject(id)
	if err != nil {
		h.log.WithError(err).WithField("project_id", id).Warn("could not delete project")
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Project deleted successfully",
		"projects": projects,
	})
}

// UpdateStatus overwrites a project's status
// @Summary Update project status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Param status body handlers.StatusUpdateRequest true "New status"
// @Success 200 {object} map[string]interface{} "Fresh project list"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or status"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/status [put]
func (h *ProjectHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	projects, err := h.projectService.UpdateStatus(id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// UpdateProgress overwrites a project's progress label
// @Summary Update project progress
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" Format(uuid)
// @Param progress body handlers.ProgressUpdateRequest true "New progress label"
// @Success 200 {object} map[string]interface{} "Fresh project list"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/progress [put]
func (h *ProjectHandler) UpdateProgress(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	var req ProgressUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}
	projects, err := h.projectService.UpdateProgress(id, req.Progress)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// MoveToFinals advances a proposal to a final record
// @Summary Move a proposal to finals
// @Description Atomically delete the proposal and create a pending final record referencing it
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "New final record and fresh project list"
// @Failure 400 {object} map[string]interface{} "Record is not a proposal"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/move-to-finals [post]
func (h *ProjectHandler) MoveToFinals(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	project, projects, err := h.projectService.MoveToFinals(id)
	if err != nil {
		h.log.WithError(err).WithField("project_id", id).Warn("move to finals failed")
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"project":  project,
		"projects": projects,
	})
}

// MoveToInventory archives a defended final record
// @Summary Move a final record to inventory
// @Description Atomically delete the final record and create an archived inventory record preserving the defense sub-record
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Final ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "New inventory record and fresh project list"
// @Failure 400 {object} map[string]interface{} "Record is not a final"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/move-to-inventory [post]
func (h *ProjectHandler) MoveToInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidUUID(c, err)
	}
	project, projects, err := h.projectService.MoveToInventory(id)
	if err != nil {
		h.log.WithError(err).WithField("project_id", id).Warn("move to inventory failed")
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"project":  project,
		"projects": projects,
	})
}

// FindSimilar searches for projects with a similar title
// @Summary Find projects with a similar title
// @Description Case-insensitive bidirectional substring match; inputs under three characters match nothing
// @Tags projects
// @Accept json
// @Produce json
// @Param title query string true "Title to check"
// @Success 200 {array} models.Project "Similar projects"
// @Router /projects/similar [get]
func (h *ProjectHandler) FindSimilar(c *fiber.Ctx) error {
	title := c.Query("title")
	return c.JSON(h.projectService.FindSimilarByTitle(title))
}

// StatusUpdateRequest is the body of a status update call.
type StatusUpdateRequest struct {
	Status models.ProjectStatus `json:"status"`
}

// ProgressUpdateRequest is the body of a progress update call.
type ProgressUpdateRequest struct {
	Progress string `json:"progress"`
}
