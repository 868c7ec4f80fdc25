// Package kernel holds the value objects shared by every aggregate of the
// ordering domain:
//   - UUID: identifier of products, customers, cart items, orders and staff
//   - Money: a non-negative amount of yen
//   - DomainEvent: facts aggregates record for publication after commit
//
// Both are immutable and their zero values fail validation where that matters,
// so aggregates can reject identifiers that were never constructed.
package kernel
