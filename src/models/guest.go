package models

import (
	"fmt"
	"strings"
	"time"

	"hms/src/types"
)

type Guest struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Title      string `json:"title,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`

	Email          string `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone          string `gorm:"index" json:"phone,omitempty"`
	AlternatePhone string `json:"alternate_phone,omitempty"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Nationality string     `json:"nationality,omitempty"`

	AddressLine1  string `json:"address_line1,omitempty"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`

	IDType       string     `json:"id_type,omitempty"`
	IDNumber     string     `json:"id_number,omitempty"`
	IDExpiryDate *time.Time `json:"id_expiry_date,omitempty"`

	PreferredRoomType     string `json:"preferred_room_type,omitempty"`
	DietaryRestrictions   string `json:"dietary_restrictions,omitempty"`
	SpecialRequests       string `json:"special_requests,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	MarketingConsent       bool `json:"marketing_consent,omitempty"`
	NewsletterSubscription bool `json:"newsletter_subscription,omitempty"`

	IsVIP           bool   `gorm:"index" json:"is_vip,omitempty"`
	IsBlacklisted   bool   `json:"is_blacklisted,omitempty"`
	BlacklistReason string `json:"blacklist_reason,omitempty"`
	Notes           string `json:"notes,omitempty"`

	Reservations []Reservation   `gorm:"foreignKey:guest_id" json:"reservations,omitempty"`
	Invoices     []Invoice       `gorm:"foreignKey:guest_id" json:"invoices,omitempty"`
	Documents    []GuestDocument `gorm:"foreignKey:guest_id" json:"documents,omitempty"`

	types.Timestamps
}

func (g *Guest) FullName() string {
	parts := []string{g.Title, g.FirstName, g.MiddleName, g.LastName}
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func (g *Guest) DisplayName() string {
	return fmt.Sprintf("%s %s", g.FirstName, g.LastName)
}

type GuestDocument struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	GuestID          uint       `json:"guest_id,omitempty"`
	DocumentType     string     `json:"document_type,omitempty"`
	DocumentNumber   string     `json:"document_number,omitempty"`
	IssueDate        *time.Time `json:"issue_date,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	IssuingAuthority string     `json:"issuing_authority,omitempty"`
	Notes            string     `json:"notes,omitempty"`

	Guest Guest `gorm:"foreignKey:guest_id" json:"-"`

	types.Timestamps
}
