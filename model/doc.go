// Package model declares the forum entities as Bun models. Every value is a
// read-only snapshot of one row; nothing here writes back to the store.
package model
