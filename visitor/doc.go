// Package visitor offers callback based traversal of lazily resolved children.
// Elements are resolved one at a time, so that large containers are never
// materialized upfront.
package visitor
