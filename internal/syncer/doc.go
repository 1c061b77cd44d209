// Package syncer forwards committed board mutations to a backend without
// blocking the caller, and owns the fallback policy when the backend fails.
//
// In live mode every operation runs on its own goroutine. A failed call
// never undoes the local mutation: the coordinator switches to degraded
// status, logs the error and records a "(mock)" notification. The next
// successful call switches it back online. In simulated mode no call is
// made at all and every operation is recorded as a mock success.
package syncer
