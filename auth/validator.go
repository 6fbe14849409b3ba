package auth

import (
	stderrors "errors"
	"fmt"

	"chat-vault/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SignUpRequest struct {
	Username string `validate:"required,min=2,max=32"`
	Password string `validate:"required,min=8,max=72"`
}

// ValidateSignUp checks business rules for account creation before any
// expensive cryptographic operation runs.
func ValidateSignUp(req SignUpRequest) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Field() == "Username" {
			return fmt.Errorf("%w: %v", errors.ErrInvalidUsername, err)
		}
		return fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}
	if !isIdentifier(req.Username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

// ValidateRoomName checks that a room name is usable as a storage key
// component. Casing is not checked here; the room store normalizes it.
func ValidateRoomName(name string) error {
	if err := validate.Var(name, "required,min=1,max=64"); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRoomName, err)
	}
	if !isIdentifier(name) {
		return errors.ErrInvalidRoomName
	}
	return nil
}

// isIdentifier restricts identifiers to [A-Za-z0-9_-]. They end up embedded
// in storage keys with ':' separators, so this is a storage invariant, not
// a cosmetic rule.
func isIdentifier(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return len(s) > 0
}
