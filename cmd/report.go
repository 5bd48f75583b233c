package cmd

import (
	"menu-manager/core/reconcile"

	"go.uber.org/zap"
)

// maxShownActions bounds the sample of actions logged by printJournal.
const maxShownActions = 10

// printJournal logs the summary of a journal and a sample of its actions.
func printJournal(l *zap.Logger, title string, s reconcile.Summary, actions []reconcile.Action) {
	l.Info(title,
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
		zap.Int("deleted", s.Deleted),
		zap.Int("linked", s.Linked),
		zap.Int("unlinked", s.Unlinked),
		zap.Int("total_actions", s.Total()),
	)

	shown := min(len(actions), maxShownActions)
	for _, action := range actions[:shown] {
		l.Info("Action", zap.Stringer("action", action))
	}
	if len(actions) > shown {
		l.Info("Additional actions not shown", zap.Int("count", len(actions)-shown))
	}
}
