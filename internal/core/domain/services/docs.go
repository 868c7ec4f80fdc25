// Package services holds domain services that span more than one aggregate.
//
// Checkout turns a customer's cart lines and the products they reference into
// a new order: lines with a zero quantity are skipped, every remaining product
// must still be on sale, and names and prices are copied into the order so
// later menu edits do not rewrite history.
package services
