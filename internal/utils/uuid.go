package utils

import "github.com/google/uuid"

// UUIDGenerator issues the trace id that tags every log line of one CLI
// invocation.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new trace id. Ids are UUIDv7, so ids of later
// invocations sort after earlier ones in the log file; if the clock-based
// generator fails a random UUIDv4 is used instead.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
