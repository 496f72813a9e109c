package utils

import (
	"log"

	"hms/src/models"
	"hms/src/types"

	"gorm.io/gorm"
)

// RecordAudit writes a best-effort audit entry. Failures are logged, never
// propagated; the audit trail must not fail the business action.
func RecordAudit(tx *gorm.DB, userId *uint, action types.AuditAction, modelName string, objectId uint, repr string, changes types.JSONB) {
	entry := models.AuditLog{
		UserID:     userId,
		Action:     action,
		ModelName:  modelName,
		ObjectID:   objectId,
		ObjectRepr: repr,
		Changes:    changes,
	}
	if err := tx.Create(&entry).Error; err != nil {
		log.Printf("Error writing audit log for %s[%d]: %s\n", modelName, objectId, err.Error())
	}
}
