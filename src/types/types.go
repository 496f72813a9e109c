package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Env string

const (
	Local      Env = "local"
	Test       Env = "test"
	Production Env = "production"
)

type RoomStatus string

const (
	ROOM_AVAILABLE    RoomStatus = "available"
	ROOM_OCCUPIED     RoomStatus = "occupied"
	ROOM_MAINTENANCE  RoomStatus = "maintenance"
	ROOM_CLEANING     RoomStatus = "cleaning"
	ROOM_OUT_OF_ORDER RoomStatus = "out_of_order"
)

type ReservationStatus string

const (
	RESERVATION_PENDING     ReservationStatus = "pending"
	RESERVATION_CONFIRMED   ReservationStatus = "confirmed"
	RESERVATION_CHECKED_IN  ReservationStatus = "checked_in"
	RESERVATION_CHECKED_OUT ReservationStatus = "checked_out"
	RESERVATION_CANCELLED   ReservationStatus = "cancelled"
	RESERVATION_NO_SHOW     ReservationStatus = "no_show"
)

// Terminal returns true for states that admit no further transition.
func (s ReservationStatus) Terminal() bool {
	return s == RESERVATION_CHECKED_OUT || s == RESERVATION_CANCELLED || s == RESERVATION_NO_SHOW
}

type BookingSource string

const (
	SOURCE_DIRECT       BookingSource = "direct"
	SOURCE_PHONE        BookingSource = "phone"
	SOURCE_EMAIL        BookingSource = "email"
	SOURCE_WALK_IN      BookingSource = "walk_in"
	SOURCE_BOOKING_COM  BookingSource = "booking_com"
	SOURCE_EXPEDIA      BookingSource = "expedia"
	SOURCE_AIRBNB       BookingSource = "airbnb"
	SOURCE_OTHER_OTA    BookingSource = "other_ota"
	SOURCE_TRAVEL_AGENT BookingSource = "travel_agent"
	SOURCE_CORPORATE    BookingSource = "corporate"
)

type InvoiceStatus string

const (
	INVOICE_DRAFT     InvoiceStatus = "draft"
	INVOICE_PENDING   InvoiceStatus = "pending"
	INVOICE_PAID      InvoiceStatus = "paid"
	INVOICE_OVERDUE   InvoiceStatus = "overdue"
	INVOICE_CANCELLED InvoiceStatus = "cancelled"
	INVOICE_REFUNDED  InvoiceStatus = "refunded"
)

type PaymentMethod string

const (
	PAYMENT_CASH   PaymentMethod = "cash"
	PAYMENT_CREDIT PaymentMethod = "credit_card"
	PAYMENT_DEBIT  PaymentMethod = "debit_card"
	PAYMENT_BANK   PaymentMethod = "bank_transfer"
	PAYMENT_CHECK  PaymentMethod = "check"
	PAYMENT_ONLINE PaymentMethod = "online"
	PAYMENT_MOBILE PaymentMethod = "mobile_payment"
)

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "pending"
	PAYMENT_COMPLETED PaymentStatus = "completed"
	PAYMENT_FAILED    PaymentStatus = "failed"
	PAYMENT_CANCELLED PaymentStatus = "cancelled"
	PAYMENT_REFUNDED  PaymentStatus = "refunded"
)

type RefundStatus string

const (
	REFUND_PENDING   RefundStatus = "pending"
	REFUND_APPROVED  RefundStatus = "approved"
	REFUND_PROCESSED RefundStatus = "processed"
	REFUND_REJECTED  RefundStatus = "rejected"
)

type TaskType string

const (
	TASK_CLEANING        TaskType = "cleaning"
	TASK_MAINTENANCE     TaskType = "maintenance"
	TASK_INSPECTION      TaskType = "inspection"
	TASK_DEEP_CLEAN      TaskType = "deep_clean"
	TASK_CHECKOUT_CLEAN  TaskType = "checkout_clean"
	TASK_CHECKIN_PREP    TaskType = "checkin_prep"
	TASK_LAUNDRY         TaskType = "laundry"
	TASK_AMENITY_RESTOCK TaskType = "amenity_restock"
)

// CleansRoom reports whether completing a task of this type returns the
// room to available.
func (t TaskType) CleansRoom() bool {
	return t == TASK_CLEANING || t == TASK_CHECKOUT_CLEAN || t == TASK_CHECKIN_PREP
}

type TaskStatus string

const (
	TASK_PENDING     TaskStatus = "pending"
	TASK_IN_PROGRESS TaskStatus = "in_progress"
	TASK_COMPLETED   TaskStatus = "completed"
	TASK_CANCELLED   TaskStatus = "cancelled"
	TASK_ON_HOLD     TaskStatus = "on_hold"
)

type TaskPriority string

const (
	PRIORITY_LOW    TaskPriority = "low"
	PRIORITY_NORMAL TaskPriority = "normal"
	PRIORITY_HIGH   TaskPriority = "high"
	PRIORITY_URGENT TaskPriority = "urgent"
)

type AuditAction string

const (
	AUDIT_CREATE   AuditAction = "create"
	AUDIT_UPDATE   AuditAction = "update"
	AUDIT_CHECKIN  AuditAction = "checkin"
	AUDIT_CHECKOUT AuditAction = "checkout"
	AUDIT_PAYMENT  AuditAction = "payment"
	AUDIT_REFUND   AuditAction = "refund"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateGuestRequestBody struct {
	Title                 string `json:"title,omitempty"`
	FirstName             string `json:"first_name" binding:"required"`
	LastName              string `json:"last_name" binding:"required"`
	MiddleName            string `json:"middle_name,omitempty"`
	Email                 string `json:"email" binding:"required,email"`
	Phone                 string `json:"phone" binding:"required"`
	AlternatePhone        string `json:"alternate_phone,omitempty"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	Gender                string `json:"gender,omitempty"`
	Nationality           string `json:"nationality,omitempty"`
	AddressLine1          string `json:"address_line1,omitempty"`
	AddressLine2          string `json:"address_line2,omitempty"`
	City                  string `json:"city,omitempty"`
	StateProvince         string `json:"state_province,omitempty"`
	PostalCode            string `json:"postal_code,omitempty"`
	Country               string `json:"country,omitempty"`
	IDType                string `json:"id_type,omitempty"`
	IDNumber              string `json:"id_number,omitempty"`
	IDExpiryDate          string `json:"id_expiry_date,omitempty"`
	PreferredRoomType     string `json:"preferred_room_type,omitempty"`
	DietaryRestrictions   string `json:"dietary_restrictions,omitempty"`
	SpecialRequests       string `json:"special_requests,omitempty"`
	MarketingConsent      bool   `json:"marketing_consent,omitempty"`
	NewsletterSubscribed  bool   `json:"newsletter_subscription,omitempty"`
	IsVIP                 bool   `json:"is_vip,omitempty"`
	Notes                 string `json:"notes,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
}

type CreateGuestDocumentRequestBody struct {
	DocumentType     string `json:"document_type" binding:"required"`
	DocumentNumber   string `json:"document_number,omitempty"`
	IssueDate        string `json:"issue_date,omitempty"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	IssuingAuthority string `json:"issuing_authority,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

type CreateRoomTypeRequestBody struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description,omitempty"`
	BasePrice    float64 `json:"base_price" binding:"required,gt=0"`
	MaxOccupancy uint    `json:"max_occupancy" binding:"required,min=1"`
	SizeSqft     uint    `json:"size_sqft,omitempty"`
	HasWifi      *bool   `json:"has_wifi,omitempty"`
	HasTV        *bool   `json:"has_tv,omitempty"`
	HasAC        *bool   `json:"has_ac,omitempty"`
	HasMinibar   bool    `json:"has_minibar,omitempty"`
	HasBalcony   bool    `json:"has_balcony,omitempty"`
	HasKitchen   bool    `json:"has_kitchen,omitempty"`
}

type CreateRoomRequestBody struct {
	Number     string `json:"number" binding:"required"`
	RoomTypeID uint   `json:"room_type" binding:"required"`
	Floor      uint   `json:"floor" binding:"required"`
	Notes      string `json:"notes,omitempty"`
}

type UpdateRoomStatusRequestBody struct {
	NewStatus *RoomStatus `json:"new_status" binding:"required"`
}

type CreateReservationRequestBody struct {
	GuestID         uint          `json:"guest" binding:"required"`
	RoomID          *uint         `json:"room,omitempty"`
	RoomTypeID      uint          `json:"room_type" binding:"required"`
	CheckInDate     string        `json:"check_in_date" binding:"required,bookabledate" time_format:"2006-01-02"`
	CheckOutDate    string        `json:"check_out_date" binding:"required,gtdate=CheckInDate" time_format:"2006-01-02"`
	Adults          uint          `json:"adults" binding:"required,min=1"`
	Children        uint          `json:"children,omitempty"`
	Infants         uint          `json:"infants,omitempty"`
	RoomRate        float64       `json:"room_rate" binding:"required,gt=0"`
	BookingSource   BookingSource `json:"booking_source,omitempty"`
	BookingRef      string        `json:"booking_reference,omitempty"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Notes           string        `json:"notes,omitempty"`
}

// UpdateReservationRequestBody carries edits to an existing booking. Date
// validation drops the not-in-the-past rule so past stays can be corrected.
type UpdateReservationRequestBody struct {
	RoomID          *uint   `json:"room,omitempty"`
	CheckInDate     string  `json:"check_in_date" binding:"required" time_format:"2006-01-02"`
	CheckOutDate    string  `json:"check_out_date" binding:"required,gtdate=CheckInDate" time_format:"2006-01-02"`
	Adults          uint    `json:"adults" binding:"required,min=1"`
	Children        uint    `json:"children,omitempty"`
	Infants         uint    `json:"infants,omitempty"`
	RoomRate        float64 `json:"room_rate" binding:"required,gt=0"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

type ReservationStatusRequestBody struct {
	NewStatus *ReservationStatus `json:"new_status" binding:"required"`
}

type CheckInRequestBody struct {
	Notes string `json:"notes,omitempty"`
}

type CheckOutRequestBody struct {
	Notes string `json:"notes,omitempty"`
}

type CancelReservationRequestBody struct {
	Reason string `json:"reason,omitempty"`
}

type AddReservationServiceRequestBody struct {
	ServiceName string  `json:"service_name" binding:"required"`
	Description string  `json:"service_description,omitempty"`
	Quantity    uint    `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
	ServiceDate string  `json:"service_date,omitempty" time_format:"2006-01-02"`
}

type CreateInvoiceRequestBody struct {
	GuestID        uint    `json:"guest" binding:"required"`
	ReservationID  *uint   `json:"reservation,omitempty"`
	IssueDate      string  `json:"issue_date,omitempty" time_format:"2006-01-02"`
	DueDate        string  `json:"due_date,omitempty" time_format:"2006-01-02"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

type AddLineItemRequestBody struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	ServiceDate string  `json:"service_date,omitempty" time_format:"2006-01-02"`
}

type RecordPaymentRequestBody struct {
	GuestID       uint          `json:"guest" binding:"required"`
	InvoiceID     *uint         `json:"invoice,omitempty"`
	ReservationID *uint         `json:"reservation,omitempty"`
	Amount        float64       `json:"amount" binding:"required,gt=0"`
	Method        PaymentMethod `json:"payment_method" binding:"required"`
	Reference     string        `json:"reference_number,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

type RecordRefundRequestBody struct {
	PaymentID uint    `json:"payment" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reason    string  `json:"reason" binding:"required"`
	Notes     string  `json:"notes,omitempty"`
}

type CreateTaskRequestBody struct {
	RoomID        uint         `json:"room" binding:"required"`
	TaskType      TaskType     `json:"task_type" binding:"required"`
	Title         string       `json:"title" binding:"required"`
	Description   string       `json:"description,omitempty"`
	ScheduledDate string       `json:"scheduled_date,omitempty" time_format:"2006-01-02"`
	Priority      TaskPriority `json:"priority,omitempty"`
}

type CompleteTaskRequestBody struct {
	Notes        string `json:"notes,omitempty"`
	QualityScore *uint  `json:"quality_score,omitempty" binding:"omitempty,min=1,max=10"`
	QualityNotes string `json:"quality_notes,omitempty"`
}

type ReservationQueryFilters struct {
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
}

type AvailabilityQuery struct {
	RoomTypeID   uint   `form:"room_type"`
	CheckInDate  string `form:"check_in_date" binding:"required"`
	CheckOutDate string `form:"check_out_date" binding:"required"`
}

type ReportRangeQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
