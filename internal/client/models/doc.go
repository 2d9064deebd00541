// Package models defines the records the admin console exchanges with the
// admin API and keeps in the Token Store.
package models
