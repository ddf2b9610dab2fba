package models

import "time"

// Payment gắn 1:1 với Booking, tạo cùng transaction với booking
type Payment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	BookingID   uint       `json:"bookingId" gorm:"uniqueIndex"`
	Amount      int        `json:"amount"`
	Status      string     `json:"status" gorm:"default:PENDING"`
	ImpUID      string     `json:"impUid"`
	MerchantUID string     `json:"merchantUid"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
