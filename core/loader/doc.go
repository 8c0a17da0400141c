// Package loader provides the plugin-like feature loading system.
//
// Each feature (bulkedit, images, integrity) implements Feature and is
// registered on a Manager by the start command.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// LoadAll registers the routes of every enabled feature.
package loader
