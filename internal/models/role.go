package models

import (
	"encoding/json"
	"time"
)

// Role is a global permission class. Permissions is an opaque JSON document;
// its shape is not enforced at this layer.
type Role struct {
	ID          int             `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Permissions json.RawMessage `json:"permissions" db:"permissions"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
