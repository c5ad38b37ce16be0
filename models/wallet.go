package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserWallet struct {
	UserID   string `gorm:"primaryKey;size:64" json:"user_id"`
	Currency int64  `json:"currency"`

	Transactions []WalletTransaction `gorm:"foreignKey:UserID;references:UserID"`
}

type WalletTransaction struct {
	gorm.Model

	UserID        string         `gorm:"index;size:64"`
	TrxType       string         `gorm:"size:16"`
	Amount        int64          `json:"amount"`
	BalanceBefore int64          `json:"balance_before"`
	BalanceAfter  int64          `json:"balance_after"`
	Note          string         `gorm:"size:255"`
	RefID         string         `gorm:"size:64;index"`
	Detail        datatypes.JSON `gorm:"type:jsonb"`
}
