// Package services contains domain services: rules that act on an Order but
// depend on configuration the aggregate does not own.
package services
