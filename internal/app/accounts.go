package app

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/attendify/attendify/internal/models"
)

// SignUp creates an account and returns its id. Usernames are matched
// exactly (case-sensitive); a taken name fails with ErrDuplicateUsername and
// leaves no partial row behind. Only a bcrypt digest of the password is
// stored, never the password itself.
func (s *Service) SignUp(username, password string) (int64, error) {
	if username == "" {
		return 0, newRequiredError("username")
	}
	if password == "" {
		return 0, newRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	id, err := s.Store.CreateUser(&models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return 0, translateStoreErr(err)
	}

	return id, nil
}

// Authenticate verifies credentials and returns the user id. An unknown
// username and a wrong password produce the exact same error, so the result
// cannot be used to probe which usernames exist.
func (s *Service) Authenticate(username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, ErrInvalidCredentials
	}

	user, err := s.Store.GetUserByUsername(username)
	if err != nil {
		return 0, translateStoreErr(err)
	}
	if user == nil {
		return 0, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}
