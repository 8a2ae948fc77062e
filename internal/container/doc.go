// Package container is the inversion-of-control registry the application
// composes its services in.
//
// A service type is satisfied in one of four ways:
//
//	container.Provide[business.PriceLists](c, business.NewPriceListService)
//	container.ProvideFactory[*business.Mailer](c, func(r container.Resolver) (*business.Mailer, error) { ... })
//	container.ProvideInstance[business.Clock](c, business.SystemClock{})
//	container.ProvideOpen(c, "Repository[T]", repositoryFactory)
//
// Resolution builds singletons on first use. For constructor registrations
// the exported constructor with the most parameters is called, the same rule
// the startup validator uses to build its dependency graph
// (see dependency.SelectConstructor).
//
// The container implements validation.RegistryProvider through
// ListRegistrations, so the validator can inspect it without knowing its
// internals. Register everything before validating; registration and
// resolution are guarded by a mutex but composition is expected to be
// single-threaded.
package container
