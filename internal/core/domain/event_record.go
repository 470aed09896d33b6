package domain

import (
	"encoding/json"
	"time"
)

// EventRecord is one accepted event in a workplace's ordered log.
type EventRecord struct {
	WorkplaceID string          `json:"workplaceID"`
	Sequence    int64           `json:"sequence"` // 1-based, gapless per workplace
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	RecordedAt  time.Time       `json:"recordedAt"`
}
