package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/editiq/editiq/internal/models"
)

func (a *App) Transactions(ctx context.Context) error {
	res, err := a.facade.ListTransactions(ctx, a.userID)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%d transaction(s)%s", len(res.Records), originNote(res.Origin)))
	for _, t := range res.Records {
		client := t.ClientID
		if client == "" {
			client = "-"
		}
		printlnFn(fmt.Sprintf("%s  %s %-7s %-15s %10s  client=%s", t.ID, t.Date, t.Type, t.Category, t.Amount.String(), client))
	}
	return nil
}

func (a *App) AddTransaction(ctx context.Context) error {
	kind, err := GetSimpleText(a.reader, "Type (income/expense)", os.Stdout)
	if err != nil {
		return err
	}
	txType := models.TransactionType(strings.ToUpper(kind))

	amount, err := GetDecimal(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	date, err := GetDate(a.reader, "Date", os.Stdout)
	if err != nil {
		return err
	}
	note, err := GetSimpleText(a.reader, "Note", os.Stdout)
	if err != nil {
		return err
	}
	clientID, err := GetSimpleText(a.reader, "Client id (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	id, origin, err := a.facade.CreateTransaction(ctx, a.userID, models.Transaction{
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     date,
		Note:     note,
		ClientID: clientID,
	})
	if err != nil {
		return err
	}
	printlnFn("Created transaction", id+originNote(origin))
	return nil
}

func (a *App) DeleteTransaction(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Transaction id to delete", os.Stdout)
	if err != nil {
		return err
	}
	origin, err := a.facade.DeleteTransaction(ctx, a.userID, id)
	if err != nil {
		return err
	}
	printlnFn("Deleted" + originNote(origin))
	return nil
}
