// Package safety screens catalog entries for display: scam-indicator
// detection, provider trust scoring and deadline urgency parsing.
//
// Everything here takes an explicit clock where time matters, which keeps the
// request-time eligibility engine free of time dependence. The ingestion path
// uses TrustScore to backfill entries that arrive unscored; the CLI detail
// view uses Assess.
package safety
