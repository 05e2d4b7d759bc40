package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types persisted by the storage layer.
// Hand-maintained: keep the field order in sync with the struct
// definitions in models.go.
var (
	IDMUS              = idMUS{}
	ConditionRecordMUS = conditionRecordMUS{}
	LogEntryMUS        = logEntryMUS{}

	stringSliceMUS = ord.NewSliceSer[string](ord.String)
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type conditionRecordMUS struct{}

func (conditionRecordMUS) Marshal(v ConditionRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += stringSliceMUS.Marshal(v.Symptoms, bs[n:])
	n += ord.String.Marshal(v.Severity, bs[n:])
	n += ord.String.Marshal(v.Advice, bs[n:])
	return n
}

func (conditionRecordMUS) Unmarshal(bs []byte) (v ConditionRecord, n int, err error) {
	var n1 int
	if v.Name, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Symptoms, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Severity, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Advice, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	return v, n, nil
}

func (conditionRecordMUS) Size(v ConditionRecord) (n int) {
	n = ord.String.Size(v.Name)
	n += stringSliceMUS.Size(v.Symptoms)
	n += ord.String.Size(v.Severity)
	n += ord.String.Size(v.Advice)
	return n
}

func (conditionRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return
	}
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	return n + n1, nil
}

type logEntryMUS struct{}

func (logEntryMUS) Marshal(v LogEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.UserID, bs[n:])
	n += marshalTime(v.Timestamp, bs[n:])
	n += ord.String.Marshal(v.UserMessage, bs[n:])
	n += ord.String.Marshal(v.BotResponse, bs[n:])
	n += stringSliceMUS.Marshal(v.Symptoms, bs[n:])
	n += stringSliceMUS.Marshal(v.Conditions, bs[n:])
	n += marshalTime(v.InsertedAt, bs[n:])
	return n
}

func (logEntryMUS) Unmarshal(bs []byte) (v LogEntry, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.UserID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Timestamp, n1, err = unmarshalTime(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.UserMessage, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.BotResponse, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Symptoms, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Conditions, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.InsertedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return v, n + n1, err
	}
	return v, n + n1, nil
}

func (logEntryMUS) Size(v LogEntry) (n int) {
	n = IDMUS.Size(v.Id)
	n += ord.String.Size(v.UserID)
	n += sizeTime(v.Timestamp)
	n += ord.String.Size(v.UserMessage)
	n += ord.String.Size(v.BotResponse)
	n += stringSliceMUS.Size(v.Symptoms)
	n += stringSliceMUS.Size(v.Conditions)
	n += sizeTime(v.InsertedAt)
	return n
}

func (logEntryMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	skippers := []func([]byte) (int, error){
		ord.String.Skip,
		varint.Int64.Skip, // Timestamp
		ord.String.Skip,
		ord.String.Skip,
		stringSliceMUS.Skip,
		stringSliceMUS.Skip,
		varint.Int64.Skip, // InsertedAt
	}
	for _, skip := range skippers {
		if n1, err = skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}

// Timestamps are stored as Unix microseconds.

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	micro, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micro).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}
