package models

type Hotel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"column:title;size:100;not null" json:"title"`
	Location string `gorm:"column:location;not null" json:"location"`
}
