// Package registry provides the central "glue" for the element system.
//
// The Registry maps the tag names used in build files (e.g., "echo",
// "fileset") to constructors of the Go types that implement them. Tasks and
// datatypes live in separate tables because a project reports them
// separately, but lookups search both.
//
// During application startup every module registers its constructors once.
// After that the registry is only read, through the Definitions view handed
// to the element processor.
package registry
