// Package business holds the services of the host application: the product
// catalog, price lists, promotions, documents, the point-of-sale store and
// chat. They are wired by the composition root in internal/app and never
// construct each other directly.
//
// Persistence is an in-memory Store with one table per entity type, reached
// through the generic Repository[T].
package business
