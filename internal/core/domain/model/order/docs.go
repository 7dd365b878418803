// Package order contains the Order aggregate and its lifecycle rules.
//
// An order links a recipient, a courier, and a signature file to a product
// being shipped. Its lifecycle is a small state machine:
//
//	Withdrawn ──Finish──> Delivered (terminal)
//	Withdrawn ──Cancel──> Canceled  (terminal, record is purged afterwards)
//
// The package also owns the two pure scheduling rules of the workflow:
// the pickup window (the wall-clock hour of the start date must lie
// within [PickupHourMin, PickupHourMax] inclusive) and the daily
// capacity constant checked by the create handler.
//
// The upper bound of the pickup window is inclusive, so pickups between
// 18:00 and 18:59 are accepted while 19:00 is rejected.
package order
