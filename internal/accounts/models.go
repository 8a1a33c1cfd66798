package accounts

import "time"

const (
	StatusPending = "pending"
	StatusActive  = "active"
)

type Account struct {
	AccountID      string    `gorm:"primaryKey" json:"account_id"`
	Username       string    `gorm:"not null;uniqueIndex" json:"username"`
	Email          string    `gorm:"not null;uniqueIndex" json:"email"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"`
	Role           string    `gorm:"default:'admin'" json:"role"`
	Status         string    `gorm:"default:'pending'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Account) TableName() string { return "app_accounts.accounts" }
