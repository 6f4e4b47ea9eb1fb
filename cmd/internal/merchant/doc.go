// Package merchant holds the merchant storefront model, its GORM-backed store
// and the HTTP handlers for merchant CRUD.
package merchant
