package models

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"column:email;size:200;not null;uniqueIndex" json:"email"`
	HashedPassword string `gorm:"column:hashed_password;size:200;not null" json:"-"`
}
