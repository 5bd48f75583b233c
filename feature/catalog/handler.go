package catalog

import (
	"net/url"

	"menu-manager/core/apperror"
	"menu-manager/core/logger"
	"menu-manager/core/reconcile"
	"menu-manager/core/utils"
	"menu-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	restaurants := app.Group("/restaurants")
	restaurants.Get("/", h.HandleListRestaurants)
	restaurants.Get("/:id", h.HandleGetRestaurant)
	restaurants.Put("/", h.HandleUpdateRestaurants)
	restaurants.Put("/:id", h.HandleUpdateRestaurant)
	restaurants.Post("/", h.HandleCreateRestaurants)
	restaurants.Post("/:id/menus", h.HandleAddMenus)
	restaurants.Delete("/", h.HandleDeleteRestaurants)
	restaurants.Delete("/:id", h.HandleDeleteRestaurant)

	menus := app.Group("/menus")
	menus.Get("/", h.HandleListMenus)
	menus.Get("/:id", h.HandleGetMenu)
	menus.Put("/", h.HandleUpdateMenus)
	menus.Put("/:id", h.HandleUpdateMenu)
	menus.Post("/:id/sections", h.HandleAddSections)
	menus.Post("/:id/section", h.HandleAddSection)
	menus.Delete("/", h.HandleDeleteMenus)
	menus.Delete("/:id", h.HandleDeleteMenu)

	sections := app.Group("/sections")
	sections.Get("/", h.HandleListSections)
	sections.Get("/:id", h.HandleGetSection)
	sections.Put("/", h.HandleUpdateSections)
	sections.Put("/:id", h.HandleUpdateSection)
	sections.Post("/:id/items", h.HandleAddItems)
	sections.Delete("/", h.HandleDeleteSections)
	sections.Delete("/:id", h.HandleDeleteSection)

	items := app.Group("/items")
	items.Get("/", h.HandleListItems)
	items.Get("/:id", h.HandleGetItem)
	items.Put("/", h.HandleUpdateItems)
	items.Put("/:id", h.HandleUpdateItem)
	items.Delete("/", h.HandleDeleteItems)
	items.Delete("/:id", h.HandleDeleteItem)

	features := app.Group("/features")
	features.Get("/", h.HandleListFeatures)
	features.Put("/", h.HandleRenameFeatures)
	features.Put("/:current/name/:new", h.HandleRenameFeature)
	features.Put("/:name", h.HandleCreateFeature)
	features.Delete("/:name", h.HandleDeleteFeature)
}

// fail writes the error body with the status of the error's kind.
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

func options(c *fiber.Ctx) reconcile.Options {
	return reconcile.Options{DryRun: utils.ToBool(c.Query("dry_run"))}
}

func pathID(c *fiber.Ctx) (int, error) {
	return utils.ParseID(c.Params("id"))
}

// pathName returns a decoded path segment. Fiber hands params over still escaped.
func pathName(c *fiber.Ctx, key string) (string, error) {
	name, err := url.PathUnescape(c.Params(key))
	if err != nil {
		return "", apperror.InvalidArgument("invalid %s %q", key, c.Params(key))
	}
	return name, nil
}

func queryIDs(c *fiber.Ctx) ([]int, error) {
	return utils.ParseIDs(c.Query("ids"))
}

func decode(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.InvalidArgument("malformed request body: %v", err)
	}
	return nil
}

// HandleListRestaurants returns every restaurant tree.
// @Summary List Restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Router /restaurants [get]
func (h *Handler) HandleListRestaurants(c *fiber.Ctx) error {
	out, err := h.service.ListRestaurants()
	if err != nil {
		return h.fail(c, "List restaurants failed", err)
	}
	return c.JSON(out)
}

// HandleGetRestaurant returns one restaurant tree.
// @Summary Get Restaurant
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [get]
func (h *Handler) HandleGetRestaurant(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Get restaurant failed", err)
	}
	out, err := h.service.GetRestaurant(id)
	if err != nil {
		return h.fail(c, "Get restaurant failed", err)
	}
	return c.JSON(out)
}

// HandleUpdateRestaurant reconciles the stored restaurant with the submitted tree.
// The path id wins over any id in the body.
// @Summary Update Restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param dry_run query bool false "Roll back after computing the journal"
// @Success 200 {object} Result[models.Restaurant]
// @Router /restaurants/{id} [put]
func (h *Handler) HandleUpdateRestaurant(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Update restaurant failed", err)
	}
	var body models.Restaurant
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update restaurant failed", err)
	}
	body.ID = reconcile.Persisted(id)

	res, err := h.service.UpdateRestaurant(body, options(c))
	if err != nil {
		return h.fail(c, "Update restaurant failed", err)
	}
	return c.JSON(res)
}

// HandleUpdateRestaurants reconciles a list of restaurant trees.
func (h *Handler) HandleUpdateRestaurants(c *fiber.Ctx) error {
	var body []models.Restaurant
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update restaurants failed", err)
	}
	res, err := h.service.UpdateRestaurants(body, options(c))
	if err != nil {
		return h.fail(c, "Update restaurants failed", err)
	}
	return c.JSON(res)
}

// HandleCreateRestaurants creates new restaurant trees.
// @Summary Create Restaurants
// @Tags restaurants
// @Accept json
// @Produce json
// @Success 201 {object} Result[[]models.Restaurant]
// @Failure 400 {object} map[string]string
// @Router /restaurants [post]
func (h *Handler) HandleCreateRestaurants(c *fiber.Ctx) error {
	var body []models.Restaurant
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Create restaurants failed", err)
	}
	res, err := h.service.CreateRestaurants(body, options(c))
	if err != nil {
		return h.fail(c, "Create restaurants failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleAddMenus creates menus under a restaurant.
func (h *Handler) HandleAddMenus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Add menus failed", err)
	}
	var body []models.Menu
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Add menus failed", err)
	}
	res, err := h.service.AddMenus(id, body, options(c))
	if err != nil {
		return h.fail(c, "Add menus failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleDeleteRestaurant deletes a restaurant and its descendants.
func (h *Handler) HandleDeleteRestaurant(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Delete restaurant failed", err)
	}
	res, err := h.service.DeleteRestaurants([]int{id}, options(c))
	if err != nil {
		return h.fail(c, "Delete restaurant failed", err)
	}
	return c.JSON(res)
}

// HandleDeleteRestaurants deletes the restaurants listed in ?ids=.
func (h *Handler) HandleDeleteRestaurants(c *fiber.Ctx) error {
	ids, err := queryIDs(c)
	if err != nil {
		return h.fail(c, "Delete restaurants failed", err)
	}
	res, err := h.service.DeleteRestaurants(ids, options(c))
	if err != nil {
		return h.fail(c, "Delete restaurants failed", err)
	}
	return c.JSON(res)
}

// HandleListMenus returns the menus listed in ?ids=, or all of them.
func (h *Handler) HandleListMenus(c *fiber.Ctx) error {
	ids, err := queryIDs(c)
	if err != nil {
		return h.fail(c, "List menus failed", err)
	}
	out, err := h.service.ListMenus(ids)
	if err != nil {
		return h.fail(c, "List menus failed", err)
	}
	return c.JSON(out)
}

// HandleGetMenu returns one menu tree.
func (h *Handler) HandleGetMenu(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Get menu failed", err)
	}
	out, err := h.service.GetMenu(id)
	if err != nil {
		return h.fail(c, "Get menu failed", err)
	}
	return c.JSON(out)
}

// HandleUpdateMenu reconciles one menu tree.
func (h *Handler) HandleUpdateMenu(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Update menu failed", err)
	}
	var body models.Menu
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update menu failed", err)
	}
	body.ID = reconcile.Persisted(id)

	res, err := h.service.UpdateMenus([]models.Menu{body}, options(c))
	if err != nil {
		return h.fail(c, "Update menu failed", err)
	}
	return c.JSON(res)
}

// HandleUpdateMenus reconciles a list of menu trees.
func (h *Handler) HandleUpdateMenus(c *fiber.Ctx) error {
	var body []models.Menu
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update menus failed", err)
	}
	res, err := h.service.UpdateMenus(body, options(c))
	if err != nil {
		return h.fail(c, "Update menus failed", err)
	}
	return c.JSON(res)
}

// HandleAddSections creates sections under a menu.
func (h *Handler) HandleAddSections(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Add sections failed", err)
	}
	var body []models.Section
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Add sections failed", err)
	}
	res, err := h.service.AddSections(id, body, options(c))
	if err != nil {
		return h.fail(c, "Add sections failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleAddSection creates a single section under a menu.
func (h *Handler) HandleAddSection(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Add section failed", err)
	}
	var body models.Section
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Add section failed", err)
	}
	res, err := h.service.AddSections(id, []models.Section{body}, options(c))
	if err != nil {
		return h.fail(c, "Add section failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleDeleteMenu deletes a menu and its descendants.
func (h *Handler) HandleDeleteMenu(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Delete menu failed", err)
	}
	res, err := h.service.DeleteMenus([]int{id}, options(c))
	if err != nil {
		return h.fail(c, "Delete menu failed", err)
	}
	return c.JSON(res)
}

// HandleDeleteMenus deletes the menus listed in ?ids=.
func (h *Handler) HandleDeleteMenus(c *fiber.Ctx) error {
	ids, err := queryIDs(c)
	if err != nil {
		return h.fail(c, "Delete menus failed", err)
	}
	res, err := h.service.DeleteMenus(ids, options(c))
	if err != nil {
		return h.fail(c, "Delete menus failed", err)
	}
	return c.JSON(res)
}

// HandleListSections returns the sections listed in ?ids=, or all of them.
func (h *Handler) HandleListSections(c *fiber.Ctx) error {
	ids, err := queryIDs(c)
	if err != nil {
		return h.fail(c, "List sections failed", err)
	}
	out, err := h.service.ListSections(ids)
	if err != nil {
		return h.fail(c, "List sections failed", err)
	}
	return c.JSON(out)
}

// HandleGetSection returns one section with its items.
func (h *Handler) HandleGetSection(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Get section failed", err)
	}
	out, err := h.service.GetSection(id)
	if err != nil {
		return h.fail(c, "Get section failed", err)
	}
	return c.JSON(out)
}

// HandleUpdateSection reconciles one section.
func (h *Handler) HandleUpdateSection(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Update section failed", err)
	}
	var body models.Section
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update section failed", err)
	}
	body.ID = reconcile.Persisted(id)

	res, err := h.service.UpdateSections([]models.Section{body}, options(c))
	if err != nil {
		return h.fail(c, "Update section failed", err)
	}
	return c.JSON(res)
}

// HandleUpdateSections reconciles a list of sections.
func (h *Handler) HandleUpdateSections(c *fiber.Ctx) error {
	var body []models.Section
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update sections failed", err)
	}
	res, err := h.service.UpdateSections(body, options(c))
	if err != nil {
		return h.fail(c, "Update sections failed", err)
	}
	return c.JSON(res)
}

// HandleAddItems creates items under a section.
func (h *Handler) HandleAddItems(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Add items failed", err)
	}
	var body []models.Item
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Add items failed", err)
	}
	res, err := h.service.AddItems(id, body, options(c))
	if err != nil {
		return h.fail(c, "Add items failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleDeleteSection deletes a section and its items.
func (h *Handler) HandleDeleteSection(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Delete section failed", err)
	}
	res, err := h.service.DeleteSections([]int{id}, options(c))
	if err != nil {
		return h.fail(c, "Delete section failed", err)
	}
	return c.JSON(res)
}

// HandleDeleteSections deletes the sections listed in ?ids=.
func (h *Handler) HandleDeleteSections(c *fiber.Ctx) error {
	ids, err := queryIDs(c)
	if err != nil {
		return h.fail(c, "Delete sections failed", err)
	}
	res, err := h.service.DeleteSections(ids, options(c))
	if err != nil {
		return h.fail(c, "Delete sections failed", err)
	}
	return c.JSON(res)
}

// HandleListItems returns the items listed in ?ids=, or all of them.
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	ids, err := queryIDs(c)
	if err != nil {
		return h.fail(c, "List items failed", err)
	}
	out, err := h.service.ListItems(ids)
	if err != nil {
		return h.fail(c, "List items failed", err)
	}
	return c.JSON(out)
}

// HandleGetItem returns one item.
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Get item failed", err)
	}
	out, err := h.service.GetItem(id)
	if err != nil {
		return h.fail(c, "Get item failed", err)
	}
	return c.JSON(out)
}

// HandleUpdateItem reconciles one item and its features.
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Update item failed", err)
	}
	var body models.Item
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update item failed", err)
	}
	body.ID = reconcile.Persisted(id)

	res, err := h.service.UpdateItems([]models.Item{body}, options(c))
	if err != nil {
		return h.fail(c, "Update item failed", err)
	}
	return c.JSON(res)
}

// HandleUpdateItems reconciles a list of items.
func (h *Handler) HandleUpdateItems(c *fiber.Ctx) error {
	var body []models.Item
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Update items failed", err)
	}
	res, err := h.service.UpdateItems(body, options(c))
	if err != nil {
		return h.fail(c, "Update items failed", err)
	}
	return c.JSON(res)
}

// HandleDeleteItem deletes an item.
func (h *Handler) HandleDeleteItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, "Delete item failed", err)
	}
	res, err := h.service.DeleteItems([]int{id}, options(c))
	if err != nil {
		return h.fail(c, "Delete item failed", err)
	}
	return c.JSON(res)
}

// HandleDeleteItems deletes the items listed in ?ids=.
func (h *Handler) HandleDeleteItems(c *fiber.Ctx) error {
	ids, err := queryIDs(c)
	if err != nil {
		return h.fail(c, "Delete items failed", err)
	}
	res, err := h.service.DeleteItems(ids, options(c))
	if err != nil {
		return h.fail(c, "Delete items failed", err)
	}
	return c.JSON(res)
}

// HandleListFeatures returns every feature name.
// @Summary List Features
// @Tags features
// @Produce json
// @Success 200 {array} string
// @Router /features [get]
func (h *Handler) HandleListFeatures(c *fiber.Ctx) error {
	out, err := h.service.ListFeatures()
	if err != nil {
		return h.fail(c, "List features failed", err)
	}
	return c.JSON(out)
}

// HandleCreateFeature creates the feature named in the path.
func (h *Handler) HandleCreateFeature(c *fiber.Ctx) error {
	name, err := pathName(c, "name")
	if err != nil {
		return h.fail(c, "Create feature failed", err)
	}
	res, err := h.service.CreateFeature(name, options(c))
	if err != nil {
		return h.fail(c, "Create feature failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleRenameFeature renames :current to :new.
func (h *Handler) HandleRenameFeature(c *fiber.Ctx) error {
	current, err := pathName(c, "current")
	if err != nil {
		return h.fail(c, "Rename feature failed", err)
	}
	next, err := pathName(c, "new")
	if err != nil {
		return h.fail(c, "Rename feature failed", err)
	}
	update := models.FeatureUpdate{CurrentName: current, NewName: next}
	res, err := h.service.RenameFeatures([]models.FeatureUpdate{update}, options(c))
	if err != nil {
		return h.fail(c, "Rename feature failed", err)
	}
	return c.JSON(res)
}

// HandleRenameFeatures applies a list of renames.
func (h *Handler) HandleRenameFeatures(c *fiber.Ctx) error {
	var body []models.FeatureUpdate
	if err := decode(c, &body); err != nil {
		return h.fail(c, "Rename features failed", err)
	}
	res, err := h.service.RenameFeatures(body, options(c))
	if err != nil {
		return h.fail(c, "Rename features failed", err)
	}
	return c.JSON(res)
}

// HandleDeleteFeature deletes the feature named in the path.
func (h *Handler) HandleDeleteFeature(c *fiber.Ctx) error {
	name, err := pathName(c, "name")
	if err != nil {
		return h.fail(c, "Delete feature failed", err)
	}
	res, err := h.service.DeleteFeature(name, options(c))
	if err != nil {
		return h.fail(c, "Delete feature failed", err)
	}
	return c.JSON(res)
}
