package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username       string `gorm:"size:50;uniqueIndex;not null"`
    Email          string `gorm:"size:100;uniqueIndex;not null"`
    PasswordHash   string `gorm:"size:255;not null"`
    ProfilePicture string `gorm:"size:255"`
    LastLogin      *time.Time
}
