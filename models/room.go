package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"staynest/constants"
)

type Room struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Grade         string         `json:"grade" gorm:"default:STANDARD;index"`
	PricePerNight int            `json:"pricePerNight"` // đơn vị KRW
	MaxAdults     int            `json:"maxAdults" gorm:"default:2"`
	MaxChildren   int            `json:"maxChildren" gorm:"default:0"`
	Status        string         `json:"status" gorm:"default:AVAILABLE"`
	Amenities     datatypes.JSON `json:"amenities" gorm:"type:json"`
	SortOrder     int            `json:"sortOrder" gorm:"default:0"`
	Images        []RoomImage    `json:"images" gorm:"foreignKey:RoomID"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// RoomImage là ảnh phòng, sắp xếp theo SortOrder
type RoomImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (r *Room) ValidateStatus() error {
	if !constants.IsValidRoomStatus(r.Status) {
		return fmt.Errorf("invalid room status: %s", r.Status)
	}
	return nil
}
