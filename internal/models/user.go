package models

import "time"

// User is the owner of budgets. Users are immutable once created.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey" example:"1"`
	Username string `json:"username" gorm:"index" example:"morre"`
}

func (User) TableName() string { return "users" }

func (User) Self() string { return "User" }

func (u User) GetID() uint { return u.ID }

func (u *User) SetID(id uint) { u.ID = id }

func (u User) Clone() User { return u }

func (u *User) ApplyDefaults(_ time.Time) {}
