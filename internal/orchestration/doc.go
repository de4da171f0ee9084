// Package orchestration sequences simulation runs into a synchronous batch
// and aggregates their results. It decouples business logic from
// presentation via the DisplaySink and Observer interfaces.
package orchestration
