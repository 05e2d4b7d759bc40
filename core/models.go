package core

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Severity classifies how serious a condition typically is.
// The set is open: snapshots may carry values like "mild to moderate".
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Intent is the coarse conversational category of a user message.
type Intent int

const (
	// IntentGreeting represents a salutation.
	IntentGreeting Intent = iota + 1
	// IntentHelp represents a request for usage information.
	IntentHelp
	// IntentGratitude represents a thank-you message.
	IntentGratitude
	// IntentFarewell represents a goodbye message.
	IntentFarewell
	// IntentSymptomQuery represents a health question. It is the default
	// when no other category matches.
	IntentSymptomQuery
)

var intentNames = map[Intent]string{
	IntentGreeting:     "greeting",
	IntentHelp:         "help",
	IntentGratitude:    "gratitude",
	IntentFarewell:     "farewell",
	IntentSymptomQuery: "symptom_query",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "symptom_query"
}

// ParseIntent maps an intent name to an Intent. Names used by external
// intent services are accepted as aliases. Unknown names map to
// IntentSymptomQuery.
func ParseIntent(name string) Intent {
	switch name {
	case "greeting":
		return IntentGreeting
	case "help":
		return IntentHelp
	case "gratitude":
		return IntentGratitude
	case "farewell":
		return IntentFarewell
	case "symptom_query", "symptom_inquiry", "emergency":
		return IntentSymptomQuery
	default:
		return IntentSymptomQuery
	}
}

// MarshalJSON renders the intent as its name.
func (i Intent) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON parses an intent name.
func (i *Intent) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*i = ParseIntent(name)
	return nil
}

// ConditionRecord is a raw condition entry as it appears in a knowledge
// snapshot. Records are validated when a knowledge base is built; a
// malformed record is skipped without aborting the build.
type ConditionRecord struct {
	Name     string   `json:"condition"`
	Symptoms []string `json:"symptoms"`
	Severity string   `json:"severity"`
	Advice   string   `json:"advice"`
}

// Condition is a validated knowledge-base entry, embedded once at build
// time. Immutable after construction. Id is derived from the condition
// name, so it stays stable across snapshot reloads.
type Condition struct {
	Id       ID        `json:"id"`
	Name     string    `json:"condition"`
	Symptoms []string  `json:"symptoms"`
	Severity Severity  `json:"severity"`
	Advice   string    `json:"advice"`
	Vector   []float32 `json:"-"`
}

// Snapshot returns a read-only copy of the condition without its
// embedding vector, safe to hand to callers.
func (c *Condition) Snapshot() Condition {
	symptoms := make([]string, len(c.Symptoms))
	copy(symptoms, c.Symptoms)
	return Condition{
		Id:       c.Id,
		Name:     c.Name,
		Symptoms: symptoms,
		Severity: c.Severity,
		Advice:   c.Advice,
	}
}

// ConditionMatch pairs a condition snapshot with its similarity score.
type ConditionMatch struct {
	Condition Condition `json:"condition"`
	Score     float32   `json:"similarity_score"`
}

// QueryAnalysis is the outcome of analyzing a single user message.
// One instance is produced per request and handed to the caller, which
// owns serialization and persistence.
type QueryAnalysis struct {
	Input             string            `json:"user_input"`
	DetectedSymptoms  []string          `json:"detected_symptoms"`
	MatchedConditions []*ConditionMatch `json:"matched_conditions"`
	Intent            Intent            `json:"intent"`
	Confidence        float32           `json:"confidence"`
}

// LogEntry records one user/bot exchange for the conversation log.
type LogEntry struct {
	Id          ID
	UserID      string
	Timestamp   time.Time // When the message was sent
	UserMessage string
	BotResponse string
	Symptoms    []string  // Symptom phrases detected in the message
	Conditions  []string  // Names of the matched conditions
	InsertedAt  time.Time // When the entry was inserted into the database
}
