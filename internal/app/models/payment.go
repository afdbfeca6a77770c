package models

// Payment is a single disbursement recorded against an allocation
type Payment struct {
	ID           int64    `json:"payment_id"`
	AllocationID int64    `json:"allocation_id"`
	Amount       *float64 `json:"amount"`
	PaymentDate  *Date    `json:"payment_date"`
	Semester     string   `json:"semester"`
}
