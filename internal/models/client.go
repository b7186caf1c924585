package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Platform identifies where the work for a client happens.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformFreelance Platform = "Freelance"
	PlatformOther     Platform = "Other"
)

// ProjectType is the kind of work delivered to a client.
type ProjectType string

const (
	ProjectThumbnail     ProjectType = "Thumbnail"
	ProjectVideoEditing  ProjectType = "Video Editing"
	ProjectGraphicDesign ProjectType = "Graphic Design"
	ProjectConsultation  ProjectType = "Consultation"
)

// Client is a paying customer or channel. A client is owned by exactly one
// user; UserID is the sole partition key for every query. Clients are never
// updated in place: the only mutations are create and delete. Deleting a
// client does not cascade to transactions or tasks referencing it.
type Client struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Name        string              `json:"name"`
	Platform    Platform            `json:"platform"`
	ProjectType ProjectType         `json:"projectType"`
	Notes       string              `json:"notes"`
	Budget      decimal.NullDecimal `json:"budget,omitempty"`
	CreatedAt   int64               `json:"createdAt"` // epoch milliseconds
}

func (c Client) RecordID() string    { return c.ID }
func (c Client) RecordOwner() string { return c.UserID }

// Validate rejects a client with an empty display name or a negative budget.
func (c Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: client name is empty", ErrValidation)
	}
	if c.Budget.Valid && c.Budget.Decimal.IsNegative() {
		return fmt.Errorf("%w: client budget is negative", ErrValidation)
	}
	return nil
}
