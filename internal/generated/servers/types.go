package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	CustomerSessionScopes = "customerSession.Scopes"
	StaffSessionScopes    = "staffSession.Scopes"
)

// Defines values for OrderStatus.
const (
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
)

// Defines values for PaymentStatus.
const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// AddCartItemRequest defines model for AddCartItemRequest.
type AddCartItemRequest struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  *int               `json:"quantity,omitempty"`
}

// Cart defines model for Cart.
type Cart struct {
	ItemCount   int        `json:"itemCount"`
	Items       []CartItem `json:"items"`
	TotalAmount int64      `json:"totalAmount"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	CreatedAt          time.Time          `json:"createdAt"`
	Id                 openapi_types.UUID `json:"id"`
	Price              int64              `json:"price"`
	ProductCategory    *string            `json:"productCategory,omitempty"`
	ProductDescription *string            `json:"productDescription,omitempty"`
	ProductId          openapi_types.UUID `json:"productId"`
	ProductImageUrl    *string            `json:"productImageUrl,omitempty"`
	ProductName        string             `json:"productName"`
	Quantity           int                `json:"quantity"`
	Subtotal           int64              `json:"subtotal"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// Customer defines model for Customer.
type Customer struct {
	CreatedAt   time.Time          `json:"createdAt"`
	DisplayName string             `json:"displayName"`
	Id          openapi_types.UUID `json:"id"`
	IsActive    bool               `json:"isActive"`
	LastLoginAt *time.Time         `json:"lastLoginAt"`
	LineUserId  string             `json:"lineUserId"`
	Nickname    *string            `json:"nickname,omitempty"`
	PictureUrl  *string            `json:"pictureUrl,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CustomerSummary defines model for CustomerSummary.
type CustomerSummary struct {
	DisplayName string             `json:"displayName"`
	Id          openapi_types.UUID `json:"id"`
	PictureUrl  *string            `json:"pictureUrl,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LiffLoginRequest defines model for LiffLoginRequest.
type LiffLoginRequest struct {
	IdToken string `json:"idToken"`
}

// LogoutResponse defines model for LogoutResponse.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// Order defines model for Order.
type Order struct {
	CompletedAt   *time.Time         `json:"completedAt"`
	CreatedAt     time.Time          `json:"createdAt"`
	Customer      *CustomerSummary   `json:"customer,omitempty"`
	Id            openapi_types.UUID `json:"id"`
	Items         []OrderItem        `json:"items"`
	OrderNumber   string             `json:"orderNumber"`
	PaymentMethod *string            `json:"paymentMethod,omitempty"`
	PaymentStatus PaymentStatus      `json:"paymentStatus"`
	Status        OrderStatus        `json:"status"`
	TotalAmount   int64              `json:"totalAmount"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id              openapi_types.UUID `json:"id"`
	ProductId       openapi_types.UUID `json:"productId"`
	ProductImageUrl *string            `json:"productImageUrl,omitempty"`
	ProductName     string             `json:"productName"`
	ProductPrice    int64              `json:"productPrice"`
	Quantity        int                `json:"quantity"`
	Subtotal        int64              `json:"subtotal"`
}

// OrderList defines model for OrderList.
type OrderList struct {
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// PaymentStatus defines model for PaymentStatus.
type PaymentStatus string

// Product defines model for Product.
type Product struct {
	Category    *string            `json:"category,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	Description *string            `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	ImageUrl    *string            `json:"imageUrl,omitempty"`
	IsActive    bool               `json:"isActive"`
	Name        string             `json:"name"`
	Price       int64              `json:"price"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ProductInput defines model for ProductInput.
type ProductInput struct {
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageUrl    *string `json:"imageUrl,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
}

// StaffLoginRequest defines model for StaffLoginRequest.
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffUser defines model for StaffUser.
type StaffUser struct {
	Email string             `json:"email"`
	Id    openapi_types.UUID `json:"id"`
}

// UpdateCartItemRequest defines model for UpdateCartItemRequest.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateOrderStatusRequest defines model for UpdateOrderStatusRequest.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// UpdatePaymentStatusRequest defines model for UpdatePaymentStatusRequest.
type UpdatePaymentStatusRequest struct {
	PaymentMethod *string       `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// CategoryFilter defines model for CategoryFilter.
type CategoryFilter = string

// ID defines model for ID.
type ID = openapi_types.UUID

// ListProductsParams defines parameters for ListProducts.
type ListProductsParams struct {
	Category *CategoryFilter `form:"category,omitempty" json:"category,omitempty"`
}

// AdminListProductsParams defines parameters for AdminListProducts.
type AdminListProductsParams struct {
	Category *CategoryFilter `form:"category,omitempty" json:"category,omitempty"`
}

// AdminListOrdersParams defines parameters for AdminListOrders.
type AdminListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
	Limit  *int         `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int         `form:"offset,omitempty" json:"offset,omitempty"`
}

// LoginCustomerJSONRequestBody defines body for LoginCustomer for application/json ContentType.
type LoginCustomerJSONRequestBody = LiffLoginRequest

// AddCartItemJSONRequestBody defines body for AddCartItem for application/json ContentType.
type AddCartItemJSONRequestBody = AddCartItemRequest

// UpdateCartItemJSONRequestBody defines body for UpdateCartItem for application/json ContentType.
type UpdateCartItemJSONRequestBody = UpdateCartItemRequest

// StaffLoginJSONRequestBody defines body for StaffLogin for application/json ContentType.
type StaffLoginJSONRequestBody = StaffLoginRequest

// AdminCreateProductJSONRequestBody defines body for AdminCreateProduct for application/json ContentType.
type AdminCreateProductJSONRequestBody = ProductInput

// AdminUpdateProductJSONRequestBody defines body for AdminUpdateProduct for application/json ContentType.
type AdminUpdateProductJSONRequestBody = ProductInput

// AdminUpdateOrderStatusJSONRequestBody defines body for AdminUpdateOrderStatus for application/json ContentType.
type AdminUpdateOrderStatusJSONRequestBody = UpdateOrderStatusRequest

// AdminUpdatePaymentStatusJSONRequestBody defines body for AdminUpdatePaymentStatus for application/json ContentType.
type AdminUpdatePaymentStatusJSONRequestBody = UpdatePaymentStatusRequest
