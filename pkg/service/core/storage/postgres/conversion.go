package postgres

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

func rawToNullRaw(raw json.RawMessage) pqtype.NullRawMessage {
	if len(raw) == 0 {
		return pqtype.NullRawMessage{}
	}

	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}
}

func nullRawToRaw(nr pqtype.NullRawMessage) json.RawMessage {
	if !nr.Valid {
		return nil
	}

	return nr.RawMessage
}

func uuidPtrToNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

func emptyFilter(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage(`{}`)
	}

	return raw
}
