package entity

import (
	"time"

	"foodshare-api/internal/common"
	"foodshare-api/internal/geo"
)

// db model
type User struct {
	Uid       string      `json:"uid" db:"uid"`
	Role      common.Role `json:"role" db:"role"`
	Name      string      `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	Phone     string      `json:"phone" db:"phone"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}

type CreateUserInput struct {
	Uid   string
	Role  common.Role
	Name  string
	Email string
	Phone string
}

// empty fields keep their stored value
type UpdateUserInput struct {
	Name  string
	Phone string
	Role  common.Role
}

// Viewer is the identity an operation runs on behalf of. An empty Uid is an anonymous visitor.
type Viewer struct {
	Uid      string
	Role     common.Role
	Name     string
	Location *geo.Point
}

func (v *Viewer) Authenticated() bool {
	return v != nil && v.Uid != ""
}

// controller model
type UserOutputModel struct {
	Uid       string `json:"uid"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

type ContactOutputModel struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
