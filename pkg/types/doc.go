// Package types defines the Product entity, the persistence Record shape,
// the Storage interface, sort fields, and standard errors for the stockroom
// inventory tool.
package types
