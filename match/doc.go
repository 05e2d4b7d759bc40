// Package match ranks knowledge base conditions against user queries.
//
// The Matcher embeds the query text together with its extracted
// symptoms and scores every condition by cosine similarity, returning
// the top matches above a threshold. Embedding failures degrade to an
// empty match list so the conversation can continue on symptom keywords
// alone. Score folds symptoms and the best match into a single
// confidence value.
package match
