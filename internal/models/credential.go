package models

import "fmt"

// Credential is a stored login for an external platform. The password is
// kept in plaintext; the source system works this way and the facade does
// not layer encryption on top of it.
type Credential struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	PlatformName string `json:"platformName"`
	LoginName    string `json:"loginName"`
	Password     string `json:"password"`
	Notes        string `json:"notes"`
	CreatedAt    int64  `json:"createdAt"`
}

func (c Credential) RecordID() string    { return c.ID }
func (c Credential) RecordOwner() string { return c.UserID }

// Validate rejects a credential missing the platform or login name.
func (c Credential) Validate() error {
	if c.PlatformName == "" {
		return fmt.Errorf("%w: platform name is empty", ErrValidation)
	}
	if c.LoginName == "" {
		return fmt.Errorf("%w: login name is empty", ErrValidation)
	}
	return nil
}
