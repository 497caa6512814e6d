package model

import "strings"

// User is the authenticated caller, as seen by domain code.
type User struct {
	ID       int64
	Name     string // given name (prenom)
	Surname  string // family name (nom)
	Email    string
	FullName string
}

// DisplayName returns FullName, falling back to "Name Surname".
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return strings.TrimSpace(strings.TrimSpace(u.Name) + " " + strings.TrimSpace(u.Surname))
}
