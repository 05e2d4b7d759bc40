// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package respond

import (
	"fmt"
	"strings"

	"github.com/poiesic/medibot/core"
)

// DefaultMaxListedSymptoms caps how many of a condition's symptoms a
// reply lists.
const DefaultMaxListedSymptoms = 5

// Generator turns a query analysis into user-facing reply text.
type Generator struct {
	copyText          Copy
	followUpCues      []string
	maxListedSymptoms int
}

// Option configures a Generator.
type Option func(*Generator) error

// WithCopy replaces the stock response text.
func WithCopy(c Copy) Option {
	return func(g *Generator) error {
		g.copyText = c
		return nil
	}
}

// WithFollowUpCues replaces the phrases that mark a message as a
// follow-up to the previous exchange.
func WithFollowUpCues(cues []string) Option {
	return func(g *Generator) error {
		g.followUpCues = cues
		return nil
	}
}

// WithMaxListedSymptoms caps how many of a condition's symptoms a reply
// lists. Default is 5.
func WithMaxListedSymptoms(n int) Option {
	return func(g *Generator) error {
		if n < 1 {
			n = DefaultMaxListedSymptoms
		}
		g.maxListedSymptoms = n
		return nil
	}
}

// NewGenerator creates a response generator.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		copyText:          DefaultCopy(),
		followUpCues:      defaultFollowUpCues,
		maxListedSymptoms: DefaultMaxListedSymptoms,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Generate produces the reply for an analysis without conversation
// history.
func (g *Generator) Generate(analysis *core.QueryAnalysis) string {
	switch analysis.Intent {
	case core.IntentGreeting:
		return g.copyText.Greeting
	case core.IntentHelp:
		return g.copyText.Help
	case core.IntentGratitude:
		return g.copyText.Gratitude
	case core.IntentFarewell:
		return g.copyText.Farewell
	default:
		return g.symptomReply(analysis)
	}
}

// GenerateWithContext produces the reply for an analysis within a
// conversation. A symptom query phrased as a follow-up to earlier turns
// gets a reply that references the previous conversation. The exchange
// is appended to the context afterwards.
func (g *Generator) GenerateWithContext(convo *Context, analysis *core.QueryAnalysis) string {
	var reply string
	if analysis.Intent == core.IntentSymptomQuery && convo.Len() > 0 && g.isFollowUp(analysis.Input) {
		reply = g.followUpReply(analysis)
	} else {
		reply = g.Generate(analysis)
	}
	convo.Append(analysis.Input, reply)
	return reply
}

// isFollowUp reports whether the input contains a follow-up cue.
func (g *Generator) isFollowUp(input string) bool {
	lowered := strings.ToLower(input)
	for _, cue := range g.followUpCues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

func (g *Generator) symptomReply(analysis *core.QueryAnalysis) string {
	symptoms := analysis.DetectedSymptoms
	conditions := analysis.MatchedConditions

	if len(symptoms) == 0 && len(conditions) == 0 {
		return g.copyText.Clarification
	}

	var b strings.Builder

	if len(symptoms) > 0 {
		b.WriteString("Based on your description, I've detected the following symptoms:\n")
		b.WriteString("- " + strings.Join(symptoms, "\n- ") + "\n\n")
	}

	if len(conditions) == 0 {
		b.WriteString(g.copyText.NoMatch)
		return b.String()
	}

	b.WriteString("Possible conditions that match your symptoms:\n\n")
	for i, match := range conditions {
		fmt.Fprintf(&b, "%d. **%s** (Severity: %s)\n", i+1, match.Condition.Name, match.Condition.Severity)
		fmt.Fprintf(&b, "   Common symptoms: %s\n", strings.Join(g.listedSymptoms(match.Condition.Symptoms), ", "))
		fmt.Fprintf(&b, "   Advice: %s\n\n", match.Condition.Advice)
	}
	b.WriteString(g.copyText.Disclaimer)
	return b.String()
}

// followUpReply frames a symptom reply as continuing the previous
// exchange.
func (g *Generator) followUpReply(analysis *core.QueryAnalysis) string {
	symptoms := "No specific symptoms detected"
	if len(analysis.DetectedSymptoms) > 0 {
		symptoms = strings.Join(analysis.DetectedSymptoms, ", ")
	}

	conditions := "No matching conditions found"
	if len(analysis.MatchedConditions) > 0 {
		lines := make([]string, 0, len(analysis.MatchedConditions))
		for _, match := range analysis.MatchedConditions {
			lines = append(lines, fmt.Sprintf("- %s: %s", match.Condition.Name, match.Condition.Advice))
		}
		conditions = strings.Join(lines, "\n")
	}

	return "Based on our previous conversation:\n\n" +
		"Current symptoms: " + symptoms + "\n\n" +
		"Additional information:\n" + conditions + "\n\n" +
		"Please consult a healthcare professional if symptoms persist."
}

func (g *Generator) listedSymptoms(symptoms []string) []string {
	if len(symptoms) > g.maxListedSymptoms {
		return symptoms[:g.maxListedSymptoms]
	}
	return symptoms
}
