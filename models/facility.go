package models

type Facility struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"column:title;size:100;not null" json:"title"`
}

// RoomFacility links a room to one of its facilities. A pair appears at most once.
type RoomFacility struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	RoomID     uint `gorm:"column:room_id;not null;uniqueIndex:idx_room_facility" json:"room_id"`
	FacilityID uint `gorm:"column:facility_id;not null;uniqueIndex:idx_room_facility" json:"facility_id"`

	Room     Room     `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
	Facility Facility `gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RoomFacility) TableName() string {
	return "rooms_facilities"
}
