// Package respond generates user-facing replies from query analyses.
//
// The Generator maps conversational intents to canned text and renders
// symptom queries into a structured reply: detected symptoms, ranked
// condition details, and a medical disclaimer. With a Context it also
// recognizes follow-up phrasing and frames the reply as continuing the
// previous exchange. Context keeps a bounded per-session history and is
// safe for concurrent use.
package respond
