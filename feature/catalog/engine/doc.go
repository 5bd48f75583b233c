// Package engine implements the hierarchical diff and cascade over catalog trees.
//
// Given a desired tree and the persisted one, the engine walks Restaurant > Menu > Section >
// Item and at every level classifies children with reconcile.Classify:
//
//   - Removed children are deleted bottom-up: their descendants are reconciled against an
//     empty desired set, item features are unlinked, then the row itself is deleted.
//   - Added children are created top-down: the row is inserted, and its children are
//     reconciled against an empty current set.
//   - Updated children are recursed into first; their own row is rewritten only when a
//     scalar column differs.
//
// Items additionally run SyncFeatures, which links and unlinks features by name.
//
// The engine issues operations on whatever store it is given and never opens transactions;
// callers wrap each call in one so a failure leaves no partial writes behind. Every issued
// operation is recorded in the engine's journal.
package engine
