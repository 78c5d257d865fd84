package auditlog

import "time"

type AuditEntryDB struct {
	ID        int64
	ActorID   int64
	Action    string
	OrderID   *int64
	Details   []byte
	CreatedAt time.Time
}
