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

import "errors"

// Domain validation errors
var (
	// ErrInvalidConditionRecord indicates a ConditionRecord failed validation.
	ErrInvalidConditionRecord = errors.New("invalid condition record")

	// ErrInvalidLogEntry indicates a LogEntry failed validation.
	ErrInvalidLogEntry = errors.New("invalid log entry")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyConditionName indicates the condition Name field is empty.
	ErrEmptyConditionName = errors.New("condition name cannot be empty")

	// ErrNoSymptoms indicates the condition lists no symptoms.
	ErrNoSymptoms = errors.New("condition must list at least one symptom")

	// ErrEmptySeverity indicates the Severity field is empty.
	ErrEmptySeverity = errors.New("severity cannot be empty")

	// ErrEmptyAdvice indicates the Advice field is empty.
	ErrEmptyAdvice = errors.New("advice cannot be empty")

	// ErrEmptyUserMessage indicates the UserMessage field is empty.
	ErrEmptyUserMessage = errors.New("user message cannot be empty")

	// ErrEmptyUserID indicates the UserID field is empty.
	ErrEmptyUserID = errors.New("user id cannot be empty")
)
