package db

import (
	"fmt"
	"strings"
	"time"
)

// InterrogationRecord is one archived interrogation exchange.
type InterrogationRecord struct {
	RoomID        string
	Suspect       string
	Question      string
	Answer        string
	NonVerbalCues string
	AskedAt       time.Time
}

// BatchRecordInterrogations inserts a batch of interrogation records in one
// round trip. Fed by the server's archive buffer.
func (d *DB) BatchRecordInterrogations(records []InterrogationRecord) error {
	if len(records) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO interrogations (room_id, suspect, question, answer, non_verbal_cues, created_at) VALUES `)
	args := make([]any, 0, len(records)*6)
	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, rec.RoomID, rec.Suspect, rec.Question, rec.Answer, rec.NonVerbalCues, rec.AskedAt)
	}

	if _, err := d.conn.Exec(sb.String(), args...); err != nil {
		return fmt.Errorf("batch inserting interrogations: %w", err)
	}
	return nil
}
