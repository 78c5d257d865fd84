package entities

import "time"

// Actor identifies who performs an operation. It is passed explicitly
// into every core call; there is no ambient session state.
type Actor struct {
	UserID int64
	Role   string
}

// SystemActor is used by non-interactive callers (workers, background tasks).
var SystemActor = Actor{UserID: 0, Role: "system"}

type AuditAction string

const (
	ActionDispatch           AuditAction = "dispatch"
	ActionBulkDispatch       AuditAction = "bulk_dispatch"
	ActionAPIDispatch        AuditAction = "api_dispatch"
	ActionCancel             AuditAction = "cancel"
	ActionMarkPaid           AuditAction = "mark_paid"
	ActionCallStatusUpdate   AuditAction = "call_status_update"
	ActionComplete           AuditAction = "complete"
	ActionReturnComplete     AuditAction = "return_complete"
	ActionReturnHandover     AuditAction = "return_handover"
	ActionCourierModeChange  AuditAction = "courier_mode_change"
	ActionCourierCredsChange AuditAction = "courier_credentials_change"
	ActionParcelImport       AuditAction = "parcel_import"
)

func (a AuditAction) String() string {
	return string(a)
}

// AuditEntry is append-only: entries are created, never updated or deleted.
type AuditEntry struct {
	ID        int64
	ActorID   int64
	Action    AuditAction
	OrderID   *int64
	Details   map[string]interface{}
	CreatedAt time.Time
}
