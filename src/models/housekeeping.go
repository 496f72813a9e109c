package models

import (
	"time"

	"hms/src/types"
)

type HousekeepingTask struct {
	ID       uint           `gorm:"primarykey" json:"id"`
	TaskType types.TaskType `gorm:"index" json:"task_type,omitempty"`
	RoomID   uint           `gorm:"index" json:"room_id,omitempty"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	AssignedToID  *uint     `json:"assigned_to,omitempty"`
	ScheduledDate time.Time `gorm:"type:date;index" json:"scheduled_date,omitempty"`
	ScheduledTime *string   `json:"scheduled_time,omitempty"`

	Status   types.TaskStatus   `gorm:"default:'pending';index" json:"status,omitempty"`
	Priority types.TaskPriority `gorm:"default:'normal'" json:"priority,omitempty"`

	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ActualDuration *int64     `json:"actual_duration,omitempty"`

	QualityScore  *uint      `json:"quality_score,omitempty"`
	QualityNotes  string     `json:"quality_notes,omitempty"`
	InspectedByID *uint      `json:"inspected_by,omitempty"`
	InspectedAt   *time.Time `json:"inspected_at,omitempty"`

	Notes               string `json:"notes,omitempty"`
	RequiresMaintenance bool   `json:"requires_maintenance,omitempty"`
	MaintenanceNotes    string `json:"maintenance_notes,omitempty"`

	Room Room `gorm:"foreignKey:room_id" json:"room,omitempty"`

	types.Timestamps
}

func (t *HousekeepingTask) IsOpen() bool {
	return t.Status == types.TASK_PENDING || t.Status == types.TASK_IN_PROGRESS || t.Status == types.TASK_ON_HOLD
}

type HousekeepingSupply struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `json:"name,omitempty"`
	Category    string `gorm:"index" json:"category,omitempty"`
	Description string `json:"description,omitempty"`

	CurrentStock uint   `json:"current_stock,omitempty"`
	MinimumStock uint   `gorm:"default:10" json:"minimum_stock,omitempty"`
	MaximumStock uint   `gorm:"default:100" json:"maximum_stock,omitempty"`
	Unit         string `gorm:"default:'piece'" json:"unit,omitempty"`

	UnitCost        float64 `json:"unit_cost,omitempty"`
	Supplier        string  `json:"supplier,omitempty"`
	SupplierContact string  `json:"supplier_contact,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active,omitempty"`

	types.Timestamps
}

func (s *HousekeepingSupply) IsLowStock() bool {
	return s.CurrentStock <= s.MinimumStock
}
