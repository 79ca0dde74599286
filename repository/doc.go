// Package repository maps forum rows onto model entities. Every operation is
// one parameterized query against the injected store; nothing is cached, and
// lookups that match no rows return an empty slice rather than an error.
package repository
