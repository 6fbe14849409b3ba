package errors

import "fmt"

var (
	ErrUserAlreadyExists   = fmt.Errorf("user already exists")
	ErrUserNotFound        = fmt.Errorf("user not found")
	ErrRoomAlreadyExists   = fmt.Errorf("room already exists")
	ErrRoomNotFound        = fmt.Errorf("room not found")
	ErrTransactionConflict = fmt.Errorf("transaction conflict")
	ErrKeyGeneration       = fmt.Errorf("key pair generation failed")
	ErrInvalidUsername     = fmt.Errorf("invalid username")
	ErrInvalidPassword     = fmt.Errorf("invalid password")
	ErrInvalidRoomName     = fmt.Errorf("invalid room name")
)
