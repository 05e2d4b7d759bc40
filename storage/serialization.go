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


package storage

import (
	"github.com/poiesic/medibot/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalLogEntry serializes a LogEntry to bytes.
func MarshalLogEntry(entry *core.LogEntry) []byte {
	buf := make([]byte, core.LogEntryMUS.Size(*entry))
	core.LogEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalLogEntry deserializes a LogEntry from bytes.
func UnmarshalLogEntry(data []byte) (*core.LogEntry, error) {
	entry, _, err := core.LogEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarshalConditionRecord serializes a ConditionRecord to bytes.
func MarshalConditionRecord(record *core.ConditionRecord) []byte {
	buf := make([]byte, core.ConditionRecordMUS.Size(*record))
	core.ConditionRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalConditionRecord deserializes a ConditionRecord from bytes.
func UnmarshalConditionRecord(data []byte) (*core.ConditionRecord, error) {
	record, _, err := core.ConditionRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
