package dto

import "time"

// CreateAlertRequest body para POST /api/alerts. ProductID es opcional.
type CreateAlertRequest struct {
	BranchID  string  `json:"branch_id"`
	ProductID *string `json:"product_id,omitempty"`
	Type      string  `json:"type"`
	Message   string  `json:"message"`
}

// AlertDTO alerta registrada.
type AlertDTO struct {
	AlertID   string    `json:"alert_id"`
	BranchID  string    `json:"branch_id"`
	ProductID *string   `json:"product_id,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
