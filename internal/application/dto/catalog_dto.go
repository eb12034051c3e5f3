package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBranchRequest body para POST /api/branches.
type CreateBranchRequest struct {
	Name    string `json:"branch_name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// BranchDTO sucursal.
type BranchDTO struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"branch_name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name              string          `json:"product_name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	DefaultSupplierID *string         `json:"default_supplier_id,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. La identidad y el SKU
// no cambian.
type UpdateProductRequest struct {
	Name              string          `json:"product_name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	DefaultSupplierID *string         `json:"default_supplier_id,omitempty"`
}

// ProductDTO producto, con el nombre del proveedor habitual en listados.
type ProductDTO struct {
	ProductID         string          `json:"product_id"`
	Name              string          `json:"product_name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	DefaultSupplierID *string         `json:"default_supplier_id,omitempty"`
	SupplierName      *string         `json:"supplier_name,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name         string `json:"supplier_name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`
}

// SupplierDTO proveedor.
type SupplierDTO struct {
	SupplierID   string `json:"supplier_id"`
	Name         string `json:"supplier_name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`
}

// CreateUserRequest body para POST /api/users. Password se guarda como bcrypt.
type CreateUserRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	BranchID *string `json:"branch_id,omitempty"`
}

// UserDTO usuario sin hash de contraseña.
type UserDTO struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	BranchID  *string   `json:"branch_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
