package reconcile

import "fmt"

// ActionType represents the kind of storage operation issued during a reconciliation.
type ActionType string

const (
	// ActionCreate inserts a new row.
	ActionCreate ActionType = "create"
	// ActionUpdate rewrites the scalar fields of an existing row.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a row.
	ActionDelete ActionType = "delete"
	// ActionLink inserts an item/feature association.
	ActionLink ActionType = "link"
	// ActionUnlink removes an item/feature association.
	ActionUnlink ActionType = "unlink"
)

// Action is one operation issued to the repositories.
type Action struct {
	// Type specifies the operation.
	Type ActionType `json:"type"`

	// Table is the relation the operation touched.
	Table string `json:"table"`

	// ID is the identifier of the affected row.
	ID int `json:"id"`

	// Ref carries the natural key of the other side of an association (a feature name).
	Ref string `json:"ref,omitempty"`
}

func (a Action) String() string {
	if a.Ref != "" {
		return fmt.Sprintf("%s %s %d %s", a.Type, a.Table, a.ID, a.Ref)
	}
	return fmt.Sprintf("%s %s %d", a.Type, a.Table, a.ID)
}

// Summary provides aggregate counts for a journal.
type Summary struct {
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Deleted  int `json:"deleted"`
	Linked   int `json:"linked"`
	Unlinked int `json:"unlinked"`
}

// Total returns the number of operations.
func (s Summary) Total() int {
	return s.Created + s.Updated + s.Deleted + s.Linked + s.Unlinked
}

// Journal records, in order, every operation issued by one reconciliation call.
// It is not safe for concurrent use; a reconciliation runs on a single goroutine.
type Journal struct {
	Actions []Action `json:"actions"`
}

// Record appends an action.
func (j *Journal) Record(t ActionType, table string, id int) {
	j.Actions = append(j.Actions, Action{Type: t, Table: table, ID: id})
}

// RecordRef appends an association action.
func (j *Journal) RecordRef(t ActionType, table string, id int, ref string) {
	j.Actions = append(j.Actions, Action{Type: t, Table: table, ID: id, Ref: ref})
}

// Len returns the number of recorded actions.
func (j *Journal) Len() int {
	return len(j.Actions)
}

// Summary counts the recorded actions by type.
func (j *Journal) Summary() Summary {
	var s Summary
	for _, a := range j.Actions {
		switch a.Type {
		case ActionCreate:
			s.Created++
		case ActionUpdate:
			s.Updated++
		case ActionDelete:
			s.Deleted++
		case ActionLink:
			s.Linked++
		case ActionUnlink:
			s.Unlinked++
		}
	}
	return s
}

// Options controls how a reconciliation is committed.
type Options struct {
	// DryRun executes the reconciliation and rolls the transaction back, so the journal
	// describes what would happen without persisting it.
	DryRun bool
}
