// Package resource bounds the work a single bulk powerset dispatch may run at once.
//
// A Controller combines a weighted semaphore for worker slots with an optional
// token-bucket limiter on the rate at which work units start.
package resource
