package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleManager  Role = "manager"
	RoleMechanic Role = "mechanic"
	RoleAdmin    Role = "admin"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
)

type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

type NotificationType string

const (
	NotifOrderCreated   NotificationType = "order_created"
	NotifOrderCompleted NotificationType = "order_completed"
	NotifInvoiceSent    NotificationType = "invoice_sent"
	NotifInvoicePaid    NotificationType = "invoice_paid"
)

type User struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Role         Role       `gorm:"not null;default:manager;index" json:"role"`
	BranchName   string     `json:"branch_name,omitempty"`
	Siret        string     `json:"siret,omitempty"`
	CompanyName  string     `json:"company_name,omitempty"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastSignedIn *time.Time `json:"last_signed_in,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type BikeType struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	NameFr    string    `gorm:"not null" json:"name_fr"`
	Price     int64     `gorm:"not null" json:"price"` // assembly price in cents
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedBy string    `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BikeLine is one requested bike type within an order, stored as JSON on the order row.
type BikeLine struct {
	BikeTypeID int64  `json:"bikeTypeId"`
	Quantity   int    `json:"quantity"`
	Barcode    string `json:"barcode,omitempty"`
}

type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string      `gorm:"uniqueIndex;not null;size:20" json:"order_number"`
	ManagerID   string      `gorm:"type:uuid;index;not null" json:"manager_id"`
	BranchName  string      `gorm:"not null" json:"branch_name"`
	Bikes       BikeLines   `gorm:"type:jsonb;default:'[]'" json:"bikes"`
	Notes       string      `json:"notes,omitempty"`
	Status      OrderStatus `gorm:"not null;default:pending;index" json:"status"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID           int64      `gorm:"index;not null" json:"order_id"`
	BikeTypeID        int64      `gorm:"not null" json:"bike_type_id"`
	Quantity          int        `gorm:"not null" json:"quantity"`
	CompletedQuantity int        `gorm:"not null;default:0" json:"completed_quantity"`
	Barcodes          StringList `gorm:"type:jsonb;default:'[]'" json:"barcodes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// InvoiceLine is one billed line on an invoice, stored as JSON on the invoice row.
type InvoiceLine struct {
	BikeTypeName string `json:"bikeTypeName"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"` // cents
	Total        int64  `json:"total"`     // cents
}

type Invoice struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNumber string        `gorm:"uniqueIndex;not null;size:20" json:"invoice_number"`
	OrderID       int64         `gorm:"index;not null" json:"order_id"`
	MechanicID    string        `gorm:"type:uuid;index;not null" json:"mechanic_id"`
	ManagerID     string        `gorm:"type:uuid;index;not null" json:"manager_id"`
	BranchName    string        `gorm:"not null" json:"branch_name"`
	Items         InvoiceLines  `gorm:"type:jsonb;default:'[]'" json:"items"`
	TotalAmount   int64         `gorm:"not null" json:"total_amount"` // cents
	PaymentMethod string        `json:"payment_method,omitempty"`
	PdfURL        string        `json:"pdf_url,omitempty"`
	PdfKey        string        `json:"pdf_key,omitempty"`
	Status        InvoiceStatus `gorm:"not null;default:draft;index" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Notification struct {
	ID               int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipientID      string           `gorm:"type:uuid;index;not null" json:"recipient_id"`
	Type             NotificationType `gorm:"not null" json:"type"`
	Title            string           `gorm:"not null" json:"title"`
	Body             string           `json:"body,omitempty"`
	RelatedOrderID   *int64           `json:"related_order_id,omitempty"`
	RelatedInvoiceID *int64           `json:"related_invoice_id,omitempty"`
	IsRead           bool             `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt        time.Time        `json:"created_at"`
}

type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string    `gorm:"not null" json:"action"`
	EntityType string    `gorm:"not null" json:"entity_type"`
	EntityID   int64     `json:"entity_id"`
	Details    JSONB     `gorm:"type:jsonb;default:'{}'" json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// PushSubscription holds a standard browser push subscription descriptor.
type PushSubscription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_push_user_endpoint" json:"user_id"`
	Endpoint  string    `gorm:"not null;uniqueIndex:idx_push_user_endpoint" json:"endpoint"`
	P256dh    string    `gorm:"not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	JTI       string     `gorm:"primaryKey;size:64" json:"jti"`
	UserID    string     `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&User{}, &BikeType{}, &Order{}, &OrderItem{}, &Invoice{},
		&Notification{}, &AuditLog{}, &PushSubscription{}, &Session{},
	}
}
