package app

// CredentialVerifier abstracts how the admin credential pair is checked so
// alternate backends can be substituted without touching request handlers.
type CredentialVerifier interface {
	Verify(username, password string) error
}
