package models

type Room struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	HotelID     uint    `gorm:"column:hotel_id;not null;index" json:"hotel_id"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	Price       int     `gorm:"column:price;not null" json:"price"`
	Quantity    int     `gorm:"column:quantity;not null" json:"quantity"`

	Hotel      Hotel      `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Facilities []Facility `gorm:"-" json:"facilities,omitempty"`
}
