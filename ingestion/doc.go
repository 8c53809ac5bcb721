// Package ingestion provides the catalog write path.
//
// The Pipeline stores catalog entries, backfills provider trust scores for
// unscored entries, and generates embeddings asynchronously on a worker pool.
// Ingestion is infrequent and runs outside the request path; searchers keep
// serving the previous catalog snapshot while a batch lands.
//
// Errors during async embedding are logged but do not fail the ingestion
// operation; unembedded entries remain reachable through lexical search.
package ingestion
