package dto

import "time"

// CreateTransferRequest body para POST /api/transfers.
// TransferDate en formato "2006-01-02".
type CreateTransferRequest struct {
	FromBranchID string `json:"from_branch_id"`
	ToBranchID   string `json:"to_branch_id"`
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	TransferDate string `json:"transfer_date"`
}

// UpdateTransferStatusRequest body para PUT /api/transfers/:id/status.
type UpdateTransferStatusRequest struct {
	Status string `json:"status"`
}

// TransferDTO transferencia entre sucursales.
type TransferDTO struct {
	TransferID   string    `json:"transfer_id"`
	FromBranchID string    `json:"from_branch_id"`
	ToBranchID   string    `json:"to_branch_id"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	TransferDate time.Time `json:"transfer_date"`
	Status       string    `json:"status"`
}
