package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/editiq/editiq/internal/models"
	"github.com/editiq/editiq/internal/store"
)

// originNote annotates output when the data did not come from the primary
// backend for this owner.
func originNote(o store.Origin) string {
	if o == store.OriginFallback {
		return " (local fallback)"
	}
	return ""
}

func (a *App) Clients(ctx context.Context) error {
	res, err := a.facade.ListClients(ctx, a.userID)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%d client(s)%s", len(res.Records), originNote(res.Origin)))
	for _, c := range res.Records {
		budget := "-"
		if c.Budget.Valid {
			budget = c.Budget.Decimal.String()
		}
		printlnFn(fmt.Sprintf("%s  %-20s %-10s %-15s budget=%s", c.ID, c.Name, c.Platform, c.ProjectType, budget))
	}
	return nil
}

func (a *App) AddClient(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Client name", os.Stdout)
	if err != nil {
		return err
	}
	platform, err := GetSimpleText(a.reader, "Platform (YouTube/Instagram/Freelance/Other)", os.Stdout)
	if err != nil {
		return err
	}
	projectType, err := GetSimpleText(a.reader, "Project type (Thumbnail/Video Editing/Graphic Design/Consultation)", os.Stdout)
	if err != nil {
		return err
	}
	budget, err := GetOptionalDecimal(a.reader, "Budget", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := GetSimpleText(a.reader, "Notes", os.Stdout)
	if err != nil {
		return err
	}

	id, origin, err := a.facade.CreateClient(ctx, a.userID, models.Client{
		Name:        name,
		Platform:    models.Platform(platform),
		ProjectType: models.ProjectType(projectType),
		Budget:      budget,
		Notes:       notes,
	})
	if err != nil {
		return err
	}
	printlnFn("Created client", id+originNote(origin))
	return nil
}

func (a *App) DeleteClient(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Client id to delete", os.Stdout)
	if err != nil {
		return err
	}
	origin, err := a.facade.DeleteClient(ctx, a.userID, id)
	if err != nil {
		return err
	}
	printlnFn("Deleted" + originNote(origin))
	return nil
}
