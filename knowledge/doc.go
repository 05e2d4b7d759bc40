// Package knowledge builds and holds the condition knowledge base.
//
// A Base is an immutable set of validated conditions with precomputed,
// unit-normalized embeddings. Build embeds condition texts through a
// pooled, batched, retrying pipeline; BuildUnembedded produces a
// degraded base when no embedding service is reachable. The Store wraps
// the active base in an atomic pointer so it can be hot-swapped under
// concurrent queries.
package knowledge
