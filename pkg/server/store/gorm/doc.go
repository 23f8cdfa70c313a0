// Package gorm implements the store interfaces on top of a GORM
// database handle.
package gorm
