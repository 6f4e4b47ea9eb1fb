// Package product holds the category, item and pricing models, their
// GORM-backed store and the HTTP handlers for product CRUD.
package product
