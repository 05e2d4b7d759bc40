package openai

import "fmt"

const intentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "intent": {
      "type": "string",
      "enum": ["greeting", "help", "gratitude", "farewell", "emergency", "symptom_query"]
    },
    "confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    }
  },
  "required": ["intent", "confidence"],
  "additionalProperties": false
}`

const intentPromptTemplate = `Classify the conversational intent of the given health-assistant message and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "greeting" is a salutation such as hello or hi.
- "help" asks what the assistant can do or how it works.
- "gratitude" expresses thanks.
- "farewell" says goodbye.
- "emergency" mentions urgent, severe, or critical situations needing immediate care.
- "symptom_query" is any description of symptoms or health questions; use it when no other intent clearly applies.
- Confidence is your own estimate between 0 and 1 of how certain the classification is.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Hello there!"
Output: {"intent": "greeting", "confidence": 0.95}

Example:
Input: "I have a pounding headache and a fever"
Output: {"intent": "symptom_query", "confidence": 0.9}`

// buildIntentPrompt returns the system prompt for intent classification.
func buildIntentPrompt() string {
	return fmt.Sprintf(intentPromptTemplate, intentResponseSchema)
}
