package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/editiq/editiq/internal/models"
)

func (a *App) Credentials(ctx context.Context) error {
	res, err := a.facade.ListCredentials(ctx, a.userID)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%d credential(s)%s", len(res.Records), originNote(res.Origin)))
	for _, c := range res.Records {
		printlnFn(fmt.Sprintf("%s  %-15s login=%s", c.ID, c.PlatformName, c.LoginName))
	}
	return nil
}

func (a *App) AddCredential(ctx context.Context) error {
	platform, err := GetSimpleText(a.reader, "Platform name", os.Stdout)
	if err != nil {
		return err
	}
	login, err := GetSimpleText(a.reader, "Login name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	notes, err := GetSimpleText(a.reader, "Notes", os.Stdout)
	if err != nil {
		return err
	}

	id, origin, err := a.facade.CreateCredential(ctx, a.userID, models.Credential{
		PlatformName: platform,
		LoginName:    login,
		Password:     password,
		Notes:        notes,
	})
	if err != nil {
		return err
	}
	printlnFn("Created credential", id+originNote(origin))
	return nil
}

func (a *App) DeleteCredential(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Credential id to delete", os.Stdout)
	if err != nil {
		return err
	}
	origin, err := a.facade.DeleteCredential(ctx, a.userID, id)
	if err != nil {
		return err
	}
	printlnFn("Deleted" + originNote(origin))
	return nil
}
