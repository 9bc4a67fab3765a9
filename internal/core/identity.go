package core

// Identity is the verified caller identity decoded once at the HTTP
// boundary. Subject is the stable user identifier; the profile claims are
// optional and only consulted by user auto-provisioning.
type Identity struct {
	Subject     string
	Email       string
	DisplayName string
	Birthday    string
}
