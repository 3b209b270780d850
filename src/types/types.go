package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type OrderStatus string

const (
	ORDER_PENDING    OrderStatus = "PENDING"
	ORDER_PROCESSING OrderStatus = "PROCESSING"
	ORDER_COMPLETED  OrderStatus = "COMPLETED"
	ORDER_CANCELLED  OrderStatus = "CANCELLED"
)

const (
	ROLE_CUSTOMER string = "customer"
	ROLE_MANAGER  string = "manager"
	ROLE_ADMIN    string = "admin"
)

// IsManagerRole is the capability check consumed everywhere a privileged
// operation is gated. Admins hold the manager capability.
func IsManagerRole(role string) bool {
	return role == ROLE_MANAGER || role == ROLE_ADMIN
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type LoginRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

type CreateMenuItemRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price" binding:"required"`
	IsActive    *bool  `json:"is_active,omitempty"`
	Quantity    int    `json:"quantity,omitempty" binding:"omitempty,min=0"`
	Threshold   *int   `json:"threshold,omitempty" binding:"omitempty,min=0"`
}

type UpdateMenuItemRequestBody struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type CreateTableRequestBody struct {
	Number uint `json:"number" binding:"required"`
	Seats  uint `json:"seats,omitempty"`
}

type UpdateTableRequestBody struct {
	Seats    *uint `json:"seats,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}

type CreateReservationRequestBody struct {
	TableID   uint   `json:"table" binding:"required"`
	StartTime string `json:"start_time" binding:"required,reservabledate" time_format:"2006-01-02 15:04:05 -07:00"`
	EndTime   string `json:"end_time" binding:"required,reservabledate,gtdate=StartTime" time_format:"2006-01-02 15:04:05 -07:00"`
}

type OrderLineRequest struct {
	MenuItemID uint `json:"menu_item" binding:"required"`
	Quantity   uint `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequestBody struct {
	TableID *uint              `json:"table,omitempty"`
	Items   []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type AdjustInventoryRequestBody struct {
	Op     string `json:"op" binding:"required,oneof=increase decrease"`
	Amount int    `json:"amount" binding:"required"`
}

type UpdateInventoryRequestBody struct {
	Threshold *int `json:"threshold,omitempty" binding:"omitempty,min=0"`
}

type DailySalesQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type StockAlertsQuery struct {
	Buffer int `form:"buffer" binding:"omitempty,min=0"`
}
