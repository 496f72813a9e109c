package models

import (
	"hms/src/types"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID         `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     *uint             `json:"user_id,omitempty"`
	Action     types.AuditAction `gorm:"index" json:"action,omitempty"`
	ModelName  string            `gorm:"index" json:"model_name,omitempty"`
	ObjectID   uint              `json:"object_id,omitempty"`
	ObjectRepr string            `json:"object_repr,omitempty"`
	Changes    types.JSONB       `gorm:"type:jsonb" json:"changes,omitempty"`

	types.Timestamps
}
