package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReportMessage wraps a finished home report for downstream consumers.
// The report body is carried verbatim so consumers see exactly what the
// user saw.
type ReportMessage struct {
	ID          string          `json:"id"`
	TargetDate  string          `json:"target_date"`
	GeneratedAt time.Time       `json:"generated_at"`
	Report      json.RawMessage `json:"report"`
}

// NewReportMessage wraps report, which must be valid JSON.
func NewReportMessage(targetDate string, report []byte) *ReportMessage {
	return &ReportMessage{
		ID:          uuid.NewString(),
		TargetDate:  targetDate,
		GeneratedAt: time.Now().UTC(),
		Report:      json.RawMessage(report),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportMessageFromJSON creates a message from JSON bytes
func ReportMessageFromJSON(data []byte) (*ReportMessage, error) {
	var msg ReportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
