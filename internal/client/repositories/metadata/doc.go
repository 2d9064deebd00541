// Package metadata is the key/value repository behind the Token Store. Rows
// live in the "metadata" table created by the client migrations.
package metadata
