package model

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	UUID         string         `db:"uuid" json:"uuid"`
	Username     string         `db:"username" json:"username"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Roles        pq.StringArray `db:"roles" json:"roles"`
	// RefreshToken : не более одного живого refresh-токена на запись.
	// Пустая строка означает "нет активной сессии".
	RefreshToken string    `db:"refresh_token" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
