package models

import (
	"time"
)

type Booking struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"index"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID      uint      `json:"roomId" gorm:"index"`
	Room        *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CheckIn     time.Time `json:"checkIn" gorm:"index"`
	CheckOut    time.Time `json:"checkOut" gorm:"index"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	TotalPrice  int       `json:"totalPrice"` // nights * pricePerNight, bất biến sau khi tạo
	Status      string    `json:"status" gorm:"default:PENDING;index"`
	SpecialNote string    `json:"specialNote,omitempty"`
	Payment     *Payment  `json:"payment,omitempty" gorm:"foreignKey:BookingID"`
	Review      *Review   `json:"review,omitempty" gorm:"foreignKey:BookingID"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights tính số đêm theo ngày (checkOut - checkIn)
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
