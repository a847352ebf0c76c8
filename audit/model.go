// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	UserID        int             `json:"user_id"`
	Action        string          `json:"action"`
	EntityType    string          `json:"entity_type"`
	EntityID      int             `json:"entity_id"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
