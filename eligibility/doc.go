// Package eligibility implements the deterministic eligibility verdict for a
// (profile, entry) pair.
//
// Category membership and the income ceiling are hard requirements evaluated
// first; failing either short-circuits the verdict to ineligible with score
// zero. The remaining criteria contribute points additively on a 0-100 scale
// and the pass threshold is 60. Every evaluated criterion produces a
// human-readable explanation so callers can render the decision without
// recomputing it.
//
// The engine is total over its input domain: absent profile fields score no
// points instead of raising, and there is no error path.
package eligibility
