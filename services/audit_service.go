package services

import (
	"encoding/json"
	"log"

	"horizon-hotel-backend/models"

	"gorm.io/gorm"
)

// AuditService appends audit rows for creates, transitions and payments.
// Failures are logged and swallowed: an unreachable audit table must never
// fail the operation being audited.
type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Record writes one audit entry. before/after may be nil; any value is
// JSON-marshalled into the state columns.
func (s *AuditService) Record(action, entity string, entityID uint, actor models.Actor, before, after interface{}, details string) {
	entry := models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Details:   details,
	}

	if before != nil {
		if raw, err := json.Marshal(before); err == nil {
			entry.BeforeState = raw
		}
	}
	if after != nil {
		if raw, err := json.Marshal(after); err == nil {
			entry.AfterState = raw
		}
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("audit: failed to record %s %s/%d: %v", action, entity, entityID, err)
	}
}

// List returns recent audit entries for an entity, newest first.
func (s *AuditService) List(entity string, entityID uint, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.AuditLog
	err := s.DB.
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
