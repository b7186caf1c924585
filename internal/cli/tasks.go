package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/editiq/editiq/internal/models"
	"github.com/editiq/editiq/internal/workspace"
)

func (a *App) Tasks(ctx context.Context) error {
	res, err := a.facade.ListTasks(ctx, a.userID)
	if err != nil {
		return err
	}
	stats := workspace.Count(res.Records)
	printlnFn(fmt.Sprintf("%d task(s): %d pending, %d working, %d completed%s",
		stats.Total(), stats.Pending, stats.Working, stats.Completed, originNote(res.Origin)))
	for _, t := range res.Records {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		printlnFn(fmt.Sprintf("%s  [%-9s] %-25s due=%s", t.ID, t.Status, t.Title, due))
	}
	return nil
}

func (a *App) AddTask(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := GetSimpleText(a.reader, "Due date (YYYY-MM-DD, empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	clientID, err := GetSimpleText(a.reader, "Client id (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	budget, err := GetOptionalDecimal(a.reader, "Budget", os.Stdout)
	if err != nil {
		return err
	}

	id, origin, err := a.facade.CreateTask(ctx, a.userID, models.WorkspaceTask{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		ClientID:    clientID,
		Budget:      budget,
	})
	if err != nil {
		return err
	}
	printlnFn("Created task", id+originNote(origin))
	return nil
}

func (a *App) DeleteTask(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Task id to delete", os.Stdout)
	if err != nil {
		return err
	}
	origin, err := a.facade.DeleteTask(ctx, a.userID, id)
	if err != nil {
		return err
	}
	printlnFn("Deleted" + originNote(origin))
	return nil
}

// SetTaskStatus moves a task to a new kanban column, stamping lifecycle
// timestamps via workspace.ApplyStatus.
func (a *App) SetTaskStatus(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Task id", os.Stdout)
	if err != nil {
		return err
	}
	statusText, err := GetSimpleText(a.reader, "New status (pending/working/completed)", os.Stdout)
	if err != nil {
		return err
	}
	status := models.TaskStatus(strings.ToUpper(statusText))

	res, err := a.facade.ListTasks(ctx, a.userID)
	if err != nil {
		return err
	}
	for _, t := range res.Records {
		if t.ID != id {
			continue
		}
		workspace.ApplyStatus(&t, status, a.now())
		origin, err := a.facade.ReplaceTask(ctx, a.userID, t)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Task %s is now %s%s", t.ID, t.Status, originNote(origin)))
		return nil
	}
	return fmt.Errorf("%w: task %s", models.ErrNotFound, id)
}
