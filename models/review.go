package models

import "time"

// Review chỉ tồn tại khi booking đã CHECKED_OUT, tối đa một review mỗi booking
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId" gorm:"uniqueIndex"`
	UserID    uint      `json:"userId" gorm:"index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
