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


package core

import (
	"fmt"
	"strings"
	"time"
)

// ValidateConditionRecord validates a raw knowledge snapshot record.
//
// Validation rules:
//   - Name must not be empty
//   - Symptoms must contain at least one non-blank phrase
//   - Severity must not be empty
//   - Advice must not be empty
//
// Knowledge-base construction skips records that fail validation rather
// than aborting the whole build.
func ValidateConditionRecord(record *ConditionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidConditionRecord)
	}

	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConditionRecord, ErrEmptyConditionName)
	}

	hasSymptom := false
	for _, s := range record.Symptoms {
		if strings.TrimSpace(s) != "" {
			hasSymptom = true
			break
		}
	}
	if !hasSymptom {
		return fmt.Errorf("%w: %w", ErrInvalidConditionRecord, ErrNoSymptoms)
	}

	if strings.TrimSpace(record.Severity) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConditionRecord, ErrEmptySeverity)
	}

	if strings.TrimSpace(record.Advice) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConditionRecord, ErrEmptyAdvice)
	}

	return nil
}

// ValidateLogEntry validates a conversation log entry.
//
// Validation rules:
//   - UserID must not be empty
//   - UserMessage must not be empty
//   - Timestamp must not be in the future
//
// NOT validated:
//   - BotResponse (may be empty for failed exchanges)
//   - ID (0 is valid from database sequences)
func ValidateLogEntry(entry *LogEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidLogEntry)
	}

	if entry.UserID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLogEntry, ErrEmptyUserID)
	}

	if entry.UserMessage == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLogEntry, ErrEmptyUserMessage)
	}

	if !IsValidTimestamp(entry.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidLogEntry, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
