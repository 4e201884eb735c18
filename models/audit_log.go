package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is an append-only record of every create, transition and
// payment. Writes are best-effort; failures never fail the operation
// being audited.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:64;index" json:"action"`
	Entity   string `gorm:"size:64" json:"entity"`
	EntityID uint   `gorm:"column:entity_id;index" json:"entity_id"`

	ActorID   uint `gorm:"column:actor_id" json:"actor_id"`
	ActorRole Role `gorm:"column:actor_role;size:32" json:"actor_role"`

	BeforeState datatypes.JSON `gorm:"column:before_state" json:"before_state,omitempty"`
	AfterState  datatypes.JSON `gorm:"column:after_state" json:"after_state,omitempty"`
	Details     string         `gorm:"type:text" json:"details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
