package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username" validate:"required"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (u *User) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}
