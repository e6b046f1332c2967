// Package operation
package operation

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound user does not exist
	ErrUserNotFound = errors.New("user does not exist")
	// ErrEmailTaken registration email already in use
	ErrEmailTaken = errors.New("email has been used")
	// ErrEmailCheck duplicate email check failed
	ErrEmailCheck = errors.New("email check error")
	// ErrPasswordEncode password hash failed
	ErrPasswordEncode = errors.New("password encode error")
)

// UserOperationInterface defines user persistence. Returned values are valid
// only when err is nil.
type UserOperationInterface interface {
	GetUserByUid(uid uint) (user *User, err error)
	GetUserByEmail(email string) (user *User, err error)
	// NewUser builds a user with a hashed password without writing it.
	NewUser(email, password, firstName, lastName, phoneNumber string, dateOfBirth *time.Time) (user *User, err error)
	// AddUser writes the user inside a transaction after re-checking the
	// email uniqueness constraint.
	AddUser(user *User) (err error)
	VerifyUserPassword(user *User, password string) (pass bool)
	IsEmailTaken(tx *gorm.DB, email string) (taken bool, err error)
}
