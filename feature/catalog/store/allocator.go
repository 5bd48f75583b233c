package store

import (
	"database/sql"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// sequence is what the repositories draw new identifiers from.
type sequence interface {
	Next(db *gorm.DB, table string) (int, error)
}

// Allocator hands out table-scoped identifiers as MAX(id) + 1.
//
// Allocation for a table is serialized. Identifiers reserved by an open transaction are
// held until it commits or rolls back, so two transactions in this process never receive
// the same identifier while neither has committed, and a rolled back transaction gives
// its identifiers back. Identifiers handed out outside a transaction are remembered for
// the life of the allocator. Rows deleted by another process, or by this process after
// the reservation was released, free their identifier for reuse. Writers in other
// processes are only stopped by the primary key, which surfaces as a Conflict.
type Allocator struct {
	mu     sync.Mutex
	tables map[string]*tableCounter
}

type tableCounter struct {
	mu      sync.Mutex
	last    int
	used    bool
	pending map[int]struct{}
}

// NewAllocator creates an allocator with no remembered state.
func NewAllocator() *Allocator {
	return &Allocator{tables: make(map[string]*tableCounter)}
}

func (a *Allocator) counter(table string) *tableCounter {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.tables[table]
	if !ok {
		c = &tableCounter{pending: make(map[int]struct{})}
		a.tables[table] = c
	}
	return c
}

// Next returns the next identifier for table and remembers it. An empty table yields 0.
func (a *Allocator) Next(db *gorm.DB, table string) (int, error) {
	c := a.counter(table)
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.next(db, table)
	if err != nil {
		return 0, err
	}
	c.last = next
	c.used = true
	return next, nil
}

// Reserve opens a reservation scope for one transaction.
func (a *Allocator) Reserve() *Reservation {
	return &Reservation{alloc: a}
}

// next must be called with c.mu held.
func (c *tableCounter) next(db *gorm.DB, table string) (int, error) {
	var max sql.NullInt64
	if err := db.Table(table).Select("MAX(id)").Row().Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to read max id of %s: %w", table, err)
	}

	next := 0
	if max.Valid {
		next = int(max.Int64) + 1
	}
	if c.used && c.last >= next {
		next = c.last + 1
	}
	for id := range c.pending {
		if id >= next {
			next = id + 1
		}
	}
	return next, nil
}

// Reservation holds the identifiers one transaction drew from an Allocator.
type Reservation struct {
	alloc *Allocator

	mu   sync.Mutex
	held []held
}

type held struct {
	c  *tableCounter
	id int
}

// Next returns the next identifier for table and holds it until Release.
func (r *Reservation) Next(db *gorm.DB, table string) (int, error) {
	c := r.alloc.counter(table)
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.next(db, table)
	if err != nil {
		return 0, err
	}
	c.pending[next] = struct{}{}

	r.mu.Lock()
	r.held = append(r.held, held{c: c, id: next})
	r.mu.Unlock()
	return next, nil
}

// Release drops every held identifier. After a commit the rows themselves keep MAX(id)
// ahead of them; after a rollback they are free again.
func (r *Reservation) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.held {
		h.c.mu.Lock()
		delete(h.c.pending, h.id)
		h.c.mu.Unlock()
	}
	r.held = nil
}
