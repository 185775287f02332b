package app

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	verifier CredentialVerifier
}

func NewService(verifier CredentialVerifier) *Service {
	return &Service{verifier: verifier}
}

// Login checks the credential pair. Session state is owned by the caller;
// the handler flips the admin flag only when this returns nil. There is no
// lockout or rate limiting.
func (s *Service) Login(username, password string) error {
	return s.verifier.Verify(username, password)
}

// StaticVerifier compares against one configured plaintext pair.
type StaticVerifier struct {
	username string
	password string
}

func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{username: username, password: password}
}

func (v *StaticVerifier) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier compares the password against a bcrypt hash, for
// deployments that refuse a plaintext credential in the environment.
type BcryptVerifier struct {
	username string
	hash     []byte
}

func NewBcryptVerifier(username, hash string) *BcryptVerifier {
	return &BcryptVerifier{username: username, hash: []byte(hash)}
}

func (v *BcryptVerifier) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil || !userOK {
		return ErrInvalidCredentials
	}
	return nil
}
