package snapshot

import (
	"menu-manager/core/apperror"
	"menu-manager/core/logger"
	"menu-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Get("/", h.HandleList)
	group.Post("/restaurants", h.HandleExportAll)
	group.Post("/restaurants/:id", h.HandleExport)
	group.Post("/import", h.HandleImport)
	group.Delete("/", h.HandleDelete)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := apperror.HTTPStatus(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleList returns the stored snapshots.
// @Summary List Snapshots
// @Tags snapshots
// @Produce json
// @Success 200 {array} Entry
// @Router /snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, "List snapshots failed", err)
	}
	return c.JSON(entries)
}

// HandleExport writes one restaurant to storage.
// @Summary Export Restaurant
// @Tags snapshots
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /snapshots/restaurants/{id} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return h.fail(c, "Export failed", err)
	}
	key, err := h.service.Export(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "Export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}

// HandleExportAll writes every restaurant to storage.
func (h *Handler) HandleExportAll(c *fiber.Ctx) error {
	keys, err := h.service.ExportAll(c.UserContext())
	if err != nil {
		return h.fail(c, "Export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"keys": keys})
}

// HandleImport applies a stored snapshot to the catalog.
// @Summary Import Snapshot
// @Tags snapshots
// @Produce json
// @Param key query string true "Object key"
// @Param as_new query bool false "Insert as a new restaurant"
// @Param dry_run query bool false "Roll back after computing the journal"
// @Success 200 {object} map[string]any
// @Router /snapshots/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	opts := ImportOptions{
		AsNew:  utils.ToBool(c.Query("as_new")),
		DryRun: utils.ToBool(c.Query("dry_run")),
	}
	res, err := h.service.Import(c.UserContext(), c.Query("key"), opts)
	if err != nil {
		return h.fail(c, "Import failed", err)
	}
	return c.JSON(res)
}

// HandleDelete removes the snapshot named by ?key=.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	key := c.Query("key")
	if err := h.service.Delete(c.UserContext(), key); err != nil {
		return h.fail(c, "Delete snapshot failed", err)
	}
	return c.JSON(fiber.Map{"status": "deleted", "key": key})
}
