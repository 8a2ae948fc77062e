// Package app bootstraps wirecheck: it loads the configuration, initializes
// logging, composes the business services into the container and validates
// their dependency graph before anything is served.
//
// # Lifecycle
//
//	cfg := app.NewConfig(false, "/etc/wirecheck")
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//		// a *validation.CircularDependencyError lands here; exit
//	}
//	return application.Run(ctx)
//
// Bootstrap and Validate are available separately for commands that want to
// report on a broken composition instead of aborting.
//
// # Composition
//
// ComposeServices is the single place services are registered. It uses every
// kind of registration the container supports: constructors, an instance
// (the clock), a factory (the notifier) and an open generic family
// (Repository[T]). Factories and open families are not part of the validated
// graph.
package app
