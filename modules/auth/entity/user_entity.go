package entity

import (
	"slotswap/core/entity"
)

type User struct {
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
	entity.BaseEntity
}
