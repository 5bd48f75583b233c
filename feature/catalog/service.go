package catalog

import (
	"errors"

	"menu-manager/core/apperror"
	"menu-manager/core/reconcile"
	"menu-manager/core/utils"
	"menu-manager/feature/catalog/engine"
	"menu-manager/feature/catalog/models"
	"menu-manager/feature/catalog/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errDryRun aborts the transaction of a dry run after the engine finished.
var errDryRun = errors.New("dry run")

// Result is returned by every mutating call.
type Result[T any] struct {
	Data    T                  `json:"data"`
	DryRun  bool               `json:"dry_run"`
	Summary reconcile.Summary  `json:"summary"`
	Actions []reconcile.Action `json:"actions"`
}

// Service runs catalog operations, one transaction per call.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a catalog service over db.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return NewServiceWithStore(store.New(db, store.NewAllocator()), logger)
}

// NewServiceWithStore creates a catalog service over an existing store, sharing its allocator.
func NewServiceWithStore(s *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: s, logger: logger}
}

// view runs a read inside a transaction so the whole tree comes from one snapshot.
func (s *Service) view(fn func(tx *store.Store) error) error {
	return s.store.Transaction(fn)
}

// mutate runs fn with an engine bound to a new transaction and returns its journal.
// A dry run executes fn completely and then rolls back.
func mutate[T any](s *Service, op string, opts reconcile.Options, fn func(e *engine.Engine) (T, error)) (*Result[T], error) {
	journal := &reconcile.Journal{}
	var data T

	err := s.store.Transaction(func(tx *store.Store) error {
		out, err := fn(engine.New(tx, journal))
		if err != nil {
			return err
		}
		data = out
		if opts.DryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		s.logger.Error("Catalog operation failed",
			zap.String("op", op),
			zap.String("kind", string(apperror.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	summary := journal.Summary()
	s.logger.Info("Catalog operation applied",
		zap.String("op", op),
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("deleted", summary.Deleted),
		zap.Int("linked", summary.Linked),
		zap.Int("unlinked", summary.Unlinked),
	)

	actions := journal.Actions
	if actions == nil {
		actions = []reconcile.Action{}
	}
	return &Result[T]{Data: data, DryRun: opts.DryRun, Summary: summary, Actions: actions}, nil
}

func validateAll[T any](what string, values []T) error {
	if len(values) == 0 {
		return apperror.InvalidArgument("%s cannot be empty", what)
	}
	for i := range values {
		if err := utils.Validate(values[i]); err != nil {
			return err
		}
	}
	return nil
}

func requireIDs(ids []int) error {
	if len(ids) == 0 {
		return apperror.InvalidArgument("ids cannot be empty")
	}
	return nil
}

// ListRestaurants returns every restaurant tree, up to the list safety cap.
func (s *Service) ListRestaurants() ([]models.Restaurant, error) {
	var out []models.Restaurant
	err := s.view(func(tx *store.Store) error {
		var err error
		out, err = tx.RestaurantTrees()
		return err
	})
	return out, err
}

// GetRestaurant returns one restaurant tree.
func (s *Service) GetRestaurant(id int) (models.Restaurant, error) {
	var out models.Restaurant
	err := s.view(func(tx *store.Store) error {
		var err error
		out, err = tx.RestaurantTree(id)
		return err
	})
	return out, err
}

// CreateRestaurants creates new restaurant trees. Every node must be new.
func (s *Service) CreateRestaurants(rs []models.Restaurant, opts reconcile.Options) (*Result[[]models.Restaurant], error) {
	if err := validateAll("restaurants", rs); err != nil {
		return nil, err
	}
	return mutate(s, "create_restaurants", opts, func(e *engine.Engine) ([]models.Restaurant, error) {
		out := make([]models.Restaurant, 0, len(rs))
		for _, r := range rs {
			created, err := e.CreateRestaurant(r)
			if err != nil {
				return nil, err
			}
			out = append(out, created)
		}
		return out, nil
	})
}

// UpdateRestaurant reconciles one restaurant tree.
func (s *Service) UpdateRestaurant(r models.Restaurant, opts reconcile.Options) (*Result[models.Restaurant], error) {
	if err := utils.Validate(r); err != nil {
		return nil, err
	}
	return mutate(s, "update_restaurant", opts, func(e *engine.Engine) (models.Restaurant, error) {
		return e.UpdateRestaurant(r)
	})
}

// UpdateRestaurants reconciles several restaurant trees in one transaction.
func (s *Service) UpdateRestaurants(rs []models.Restaurant, opts reconcile.Options) (*Result[[]models.Restaurant], error) {
	if err := validateAll("restaurants", rs); err != nil {
		return nil, err
	}
	return mutate(s, "update_restaurants", opts, func(e *engine.Engine) ([]models.Restaurant, error) {
		out := make([]models.Restaurant, 0, len(rs))
		for _, r := range rs {
			updated, err := e.UpdateRestaurant(r)
			if err != nil {
				return nil, err
			}
			out = append(out, updated)
		}
		return out, nil
	})
}

// ApplyRestaurants creates the pending restaurants and reconciles the persisted ones, all in
// one transaction.
func (s *Service) ApplyRestaurants(rs []models.Restaurant, opts reconcile.Options) (*Result[[]models.Restaurant], error) {
	if err := validateAll("restaurants", rs); err != nil {
		return nil, err
	}
	return mutate(s, "apply_restaurants", opts, func(e *engine.Engine) ([]models.Restaurant, error) {
		out := make([]models.Restaurant, 0, len(rs))
		for _, r := range rs {
			apply := e.UpdateRestaurant
			if r.ID.IsPending() {
				apply = e.CreateRestaurant
			}
			applied, err := apply(r)
			if err != nil {
				return nil, err
			}
			out = append(out, applied)
		}
		return out, nil
	})
}

// AddMenus creates new menus under an existing restaurant.
func (s *Service) AddMenus(restaurantID int, menus []models.Menu, opts reconcile.Options) (*Result[[]models.Menu], error) {
	if err := validateAll("menus", menus); err != nil {
		return nil, err
	}
	return mutate(s, "add_menus", opts, func(e *engine.Engine) ([]models.Menu, error) {
		out := make([]models.Menu, 0, len(menus))
		for _, m := range menus {
			created, err := e.AddMenu(restaurantID, m)
			if err != nil {
				return nil, err
			}
			out = append(out, created)
		}
		return out, nil
	})
}

// DeleteRestaurants removes restaurants with all of their descendants.
func (s *Service) DeleteRestaurants(ids []int, opts reconcile.Options) (*Result[[]int], error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}
	return mutate(s, "delete_restaurants", opts, func(e *engine.Engine) ([]int, error) {
		for _, id := range ids {
			if err := e.DeleteRestaurant(id); err != nil {
				return nil, err
			}
		}
		return ids, nil
	})
}

// ListMenus returns the named menus, or every menu up to the list safety cap.
func (s *Service) ListMenus(ids []int) ([]models.Menu, error) {
	var out []models.Menu
	err := s.view(func(tx *store.Store) error {
		if len(ids) == 0 {
			var err error
			out, err = tx.MenuTrees()
			return err
		}
		for _, id := range ids {
			m, err := tx.MenuTree(id)
			if err != nil {
				return err
			}
			out = append(out, m)
		}
		return nil
	})
	return out, err
}

// GetMenu returns one menu tree.
func (s *Service) GetMenu(id int) (models.Menu, error) {
	var out models.Menu
	err := s.view(func(tx *store.Store) error {
		var err error
		out, err = tx.MenuTree(id)
		return err
	})
	return out, err
}

// UpdateMenus reconciles menu trees in one transaction.
func (s *Service) UpdateMenus(menus []models.Menu, opts reconcile.Options) (*Result[[]models.Menu], error) {
	if err := validateAll("menus", menus); err != nil {
		return nil, err
	}
	return mutate(s, "update_menus", opts, func(e *engine.Engine) ([]models.Menu, error) {
		out := make([]models.Menu, 0, len(menus))
		for _, m := range menus {
			updated, err := e.UpdateMenu(m)
			if err != nil {
				return nil, err
			}
			out = append(out, updated)
		}
		return out, nil
	})
}

// AddSections creates new sections under an existing menu.
func (s *Service) AddSections(menuID int, sections []models.Section, opts reconcile.Options) (*Result[[]models.Section], error) {
	if err := validateAll("sections", sections); err != nil {
		return nil, err
	}
	return mutate(s, "add_sections", opts, func(e *engine.Engine) ([]models.Section, error) {
		out := make([]models.Section, 0, len(sections))
		for _, sec := range sections {
			created, err := e.AddSection(menuID, sec)
			if err != nil {
				return nil, err
			}
			out = append(out, created)
		}
		return out, nil
	})
}

// DeleteMenus removes menus with all of their descendants.
func (s *Service) DeleteMenus(ids []int, opts reconcile.Options) (*Result[[]int], error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}
	return mutate(s, "delete_menus", opts, func(e *engine.Engine) ([]int, error) {
		for _, id := range ids {
			if err := e.DeleteMenu(id); err != nil {
				return nil, err
			}
		}
		return ids, nil
	})
}

// ListSections returns the named sections, or every section up to the list safety cap.
func (s *Service) ListSections(ids []int) ([]models.Section, error) {
	var out []models.Section
	err := s.view(func(tx *store.Store) error {
		if len(ids) == 0 {
			var err error
			out, err = tx.SectionTrees()
			return err
		}
		for _, id := range ids {
			sec, err := tx.SectionTree(id)
			if err != nil {
				return err
			}
			out = append(out, sec)
		}
		return nil
	})
	return out, err
}

// GetSection returns one section with its items.
func (s *Service) GetSection(id int) (models.Section, error) {
	var out models.Section
	err := s.view(func(tx *store.Store) error {
		var err error
		out, err = tx.SectionTree(id)
		return err
	})
	return out, err
}

// UpdateSections reconciles sections in one transaction.
func (s *Service) UpdateSections(sections []models.Section, opts reconcile.Options) (*Result[[]models.Section], error) {
	if err := validateAll("sections", sections); err != nil {
		return nil, err
	}
	return mutate(s, "update_sections", opts, func(e *engine.Engine) ([]models.Section, error) {
		out := make([]models.Section, 0, len(sections))
		for _, sec := range sections {
			updated, err := e.UpdateSection(sec)
			if err != nil {
				return nil, err
			}
			out = append(out, updated)
		}
		return out, nil
	})
}

// AddItems creates new items under an existing section.
func (s *Service) AddItems(sectionID int, items []models.Item, opts reconcile.Options) (*Result[[]models.Item], error) {
	if err := validateAll("items", items); err != nil {
		return nil, err
	}
	return mutate(s, "add_items", opts, func(e *engine.Engine) ([]models.Item, error) {
		out := make([]models.Item, 0, len(items))
		for _, item := range items {
			created, err := e.AddItem(sectionID, item)
			if err != nil {
				return nil, err
			}
			out = append(out, created)
		}
		return out, nil
	})
}

// DeleteSections removes sections with their items.
func (s *Service) DeleteSections(ids []int, opts reconcile.Options) (*Result[[]int], error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}
	return mutate(s, "delete_sections", opts, func(e *engine.Engine) ([]int, error) {
		for _, id := range ids {
			if err := e.DeleteSection(id); err != nil {
				return nil, err
			}
		}
		return ids, nil
	})
}

// ListItems returns the named items, or every item up to the list safety cap.
func (s *Service) ListItems(ids []int) ([]models.Item, error) {
	var out []models.Item
	err := s.view(func(tx *store.Store) error {
		if len(ids) == 0 {
			var err error
			out, err = tx.ItemTrees()
			return err
		}
		for _, id := range ids {
			item, err := tx.ItemTree(id)
			if err != nil {
				return err
			}
			out = append(out, item)
		}
		return nil
	})
	return out, err
}

// GetItem returns one item with its feature names.
func (s *Service) GetItem(id int) (models.Item, error) {
	var out models.Item
	err := s.view(func(tx *store.Store) error {
		var err error
		out, err = tx.ItemTree(id)
		return err
	})
	return out, err
}

// UpdateItems reconciles items, features included, in one transaction.
func (s *Service) UpdateItems(items []models.Item, opts reconcile.Options) (*Result[[]models.Item], error) {
	if err := validateAll("items", items); err != nil {
		return nil, err
	}
	return mutate(s, "update_items", opts, func(e *engine.Engine) ([]models.Item, error) {
		out := make([]models.Item, 0, len(items))
		for _, item := range items {
			updated, err := e.UpdateItem(item)
			if err != nil {
				return nil, err
			}
			out = append(out, updated)
		}
		return out, nil
	})
}

// DeleteItems releases the items' features and removes them.
func (s *Service) DeleteItems(ids []int, opts reconcile.Options) (*Result[[]int], error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}
	return mutate(s, "delete_items", opts, func(e *engine.Engine) ([]int, error) {
		for _, id := range ids {
			if err := e.DeleteItem(id); err != nil {
				return nil, err
			}
		}
		return ids, nil
	})
}

// ListFeatures returns every feature name, sorted.
func (s *Service) ListFeatures() ([]string, error) {
	rows, err := s.store.Features.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

// CreateFeature adds a feature. A taken name is a Conflict.
func (s *Service) CreateFeature(name string, opts reconcile.Options) (*Result[models.Feature], error) {
	if err := utils.ValidateValue("feature name", name, "notblank"); err != nil {
		return nil, err
	}
	return mutate(s, "create_feature", opts, func(e *engine.Engine) (models.Feature, error) {
		return e.CreateFeature(name)
	})
}

// RenameFeatures applies every rename in one transaction.
func (s *Service) RenameFeatures(updates []models.FeatureUpdate, opts reconcile.Options) (*Result[[]models.FeatureUpdate], error) {
	if err := validateAll("feature updates", updates); err != nil {
		return nil, err
	}
	return mutate(s, "rename_features", opts, func(e *engine.Engine) ([]models.FeatureUpdate, error) {
		for _, u := range updates {
			if err := e.RenameFeature(u.CurrentName, u.NewName); err != nil {
				return nil, err
			}
		}
		return updates, nil
	})
}

// DeleteFeature removes a feature. A feature still linked to an item is a Conflict.
func (s *Service) DeleteFeature(name string, opts reconcile.Options) (*Result[string], error) {
	if err := utils.ValidateValue("feature name", name, "notblank"); err != nil {
		return nil, err
	}
	return mutate(s, "delete_feature", opts, func(e *engine.Engine) (string, error) {
		return name, e.DeleteFeature(name)
	})
}
