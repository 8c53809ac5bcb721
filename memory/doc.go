// Package memory provides behavioral personalization from an append-only
// interaction log.
//
// The Recorder appends interaction events asynchronously on a worker pool;
// a recording failure is logged and never propagates to the caller. The
// Booster reads the log and computes a decay-weighted similarity boost per
// candidate, with a cold-start floor that disables personalization for users
// with too few events.
//
// Event weights are stored undecayed and decayed at read time, so the boost
// is reproducible from the raw log for any fixed clock.
package memory
