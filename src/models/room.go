package models

import (
	"time"

	"hms/src/types"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type RoomType struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	Name         string  `gorm:"uniqueIndex" json:"name,omitempty"`
	Slug         string  `gorm:"index" json:"slug,omitempty"`
	Description  string  `json:"description,omitempty"`
	BasePrice    float64 `json:"base_price,omitempty"`
	MaxOccupancy uint    `gorm:"default:2" json:"max_occupancy,omitempty"`
	SizeSqft     uint    `json:"size_sqft,omitempty"`

	HasWifi    bool `gorm:"default:true" json:"has_wifi,omitempty"`
	HasTV      bool `gorm:"default:true" json:"has_tv,omitempty"`
	HasAC      bool `gorm:"default:true" json:"has_ac,omitempty"`
	HasMinibar bool `json:"has_minibar,omitempty"`
	HasBalcony bool `json:"has_balcony,omitempty"`
	HasKitchen bool `json:"has_kitchen,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active,omitempty"`

	Rooms []Room `gorm:"foreignKey:room_type_id" json:"rooms,omitempty"`

	types.Timestamps
}

func (rt *RoomType) BeforeSave(tx *gorm.DB) error {
	if rt.Name != "" {
		rt.Slug = slug.Make(rt.Name)
	}
	return nil
}

type Room struct {
	ID         uint             `gorm:"primarykey" json:"id"`
	Number     string           `gorm:"uniqueIndex" json:"number,omitempty"`
	RoomTypeID uint             `json:"room_type_id,omitempty"`
	Floor      uint             `json:"floor,omitempty"`
	Status     types.RoomStatus `gorm:"default:'available';index" json:"status,omitempty"`

	Notes           string     `json:"notes,omitempty"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
	IsActive        bool       `gorm:"default:true" json:"is_active,omitempty"`

	RoomType     RoomType      `gorm:"foreignKey:room_type_id" json:"room_type,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:room_id" json:"reservations,omitempty"`

	types.Timestamps
}

func (r *Room) IsAvailable() bool {
	return r.Status == types.ROOM_AVAILABLE
}
