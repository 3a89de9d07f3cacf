// Package model contains the GORM persistence models mirroring the
// database schema.
package model

import (
	"time"
)

// AccountModel mirrors the 'auth_user' table. The bigint identity column is
// assigned by PostgreSQL; the unique index on username is the authoritative
// guard against duplicate registration.
type AccountModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(128);uniqueIndex:idx_auth_user_username;not null"`
	Email        string    `gorm:"type:varchar(128);not null"`
	PasswordHash string    `gorm:"type:varchar(128);not null"`
	CreatedAt    time.Time `gorm:"column:date_created"`
	UpdatedAt    time.Time `gorm:"column:date_modified"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "auth_user"
}
