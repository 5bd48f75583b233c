// Package loader provides the feature loading system.
//
// Each feature (catalog, snapshot, integrity) implements the Feature interface and is
// registered with a Manager, which loads the enabled ones onto the Fiber router in
// registration order.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
//   - Register() adds a feature.
//   - LoadAll() loads every enabled feature and fails on the first Load error.
package loader
