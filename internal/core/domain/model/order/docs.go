// Package order contains the Order aggregate root of the food-ordering domain.
//
// An order is an immutable snapshot of a customer's cart at checkout time
// (product names, unit prices and quantities are copied into Items) plus two
// independent lifecycles:
//
//   - Status, a state machine that follows the kitchen workflow
//     pending -> confirmed -> preparing -> ready -> completed, where any
//     non-terminal status may also move to cancelled;
//   - PaymentStatus, pending or paid, updated by staff at the counter.
//
// Completed and cancelled orders are terminal: no further status transition is
// accepted. Entering completed stamps the completion time.
package order
