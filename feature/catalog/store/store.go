package store

import (
	"errors"
	"fmt"

	"menu-manager/core/apperror"
	"menu-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// MaxListRows is the safety cap applied to unfiltered list queries.
const MaxListRows = 100

// ErrTooManyRows is returned when an unfiltered list exceeds MaxListRows.
var ErrTooManyRows = errors.New("result exceeds the list safety cap")

// Store bundles the catalog repositories over one *gorm.DB, which is either the
// application connection or an open transaction.
type Store struct {
	db    *gorm.DB
	ids   *Allocator
	scope *Reservation

	Validator   *Validator
	Restaurants *RestaurantRepository
	Menus       *MenuRepository
	Sections    *SectionRepository
	Items       *ItemRepository
	Features    *FeatureRepository
}

// New creates a store. The allocator is shared by every store derived from this one.
func New(db *gorm.DB, ids *Allocator) *Store {
	if ids == nil {
		ids = NewAllocator()
	}
	return build(db, ids, nil)
}

func build(db *gorm.DB, ids *Allocator, scope *Reservation) *Store {
	var seq sequence = ids
	if scope != nil {
		seq = scope
	}

	v := &Validator{db: db}
	return &Store{
		db:          db,
		ids:         ids,
		scope:       scope,
		Validator:   v,
		Restaurants: &RestaurantRepository{db: db, ids: seq, v: v},
		Menus:       &MenuRepository{db: db, ids: seq, v: v},
		Sections:    &SectionRepository{db: db, ids: seq, v: v},
		Items:       &ItemRepository{db: db, ids: seq, v: v},
		Features:    &FeatureRepository{db: db, ids: seq, v: v},
	}
}

// DB returns the underlying handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn against a store bound to a new transaction. The transaction commits
// when fn returns nil and rolls back otherwise. Identifiers drawn inside fn are held until
// the outermost transaction ends.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	scope := s.scope
	if scope == nil {
		scope = s.ids.Reserve()
		defer scope.Release()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(build(tx, s.ids, scope))
	})
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// translate maps storage errors onto the application error kinds.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound("%s does not exist", what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.ConflictFrom(err, "%s already exists", what)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperror.ConflictFrom(err, "%s violates a foreign key", what)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// capped checks the result of a query issued with Limit(MaxListRows + 1).
func capped(n int, table string) error {
	if n > MaxListRows {
		return fmt.Errorf("%w: more than %d rows in %s", ErrTooManyRows, MaxListRows, table)
	}
	return nil
}
