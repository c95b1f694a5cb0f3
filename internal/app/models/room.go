package models

// Room represents a physical room classes are scheduled into.
type Room struct {
	ID         int64    `json:"id" db:"id" example:"1"`
	RoomNumber string   `json:"roomNumber" db:"room_number" example:"NAC401"` // Unique, stored upper-cased
	Capacity   int      `json:"capacity" db:"capacity" example:"40"`
	Type       RoomType `json:"type" db:"type" example:"THEORY"`
}
