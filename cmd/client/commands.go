package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/adapter"
	"github.com/MKhiriev/go-staffing/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errWrongArguments = errors.New("wrong number of arguments")
)

// command runs one client operation and returns what should be printed.
type command struct {
	minArgs int
	maxArgs int
	run     func(ctx context.Context, c adapter.StaffingClient, args []string) (any, error)
}

var commands = map[string]command{
	"users": {run: func(ctx context.Context, c adapter.StaffingClient, _ []string) (any, error) {
		return c.ListUsers(ctx)
	}},
	"user": {minArgs: 1, maxArgs: 1, run: func(ctx context.Context, c adapter.StaffingClient, args []string) (any, error) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return nil, fmt.Errorf("user id: %w", err)
		}
		return c.GetUser(ctx, id)
	}},
	"create-user": {minArgs: 1, maxArgs: 2, run: func(ctx context.Context, c adapter.StaffingClient, args []string) (any, error) {
		user := models.User{Name: args[0]}
		if len(args) == 2 {
			user.Password = args[1]
		}
		return c.CreateUser(ctx, user)
	}},
	"projects": {run: func(ctx context.Context, c adapter.StaffingClient, _ []string) (any, error) {
		return c.ListProjects(ctx)
	}},
	"project": {minArgs: 1, maxArgs: 1, run: func(ctx context.Context, c adapter.StaffingClient, args []string) (any, error) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return nil, fmt.Errorf("project id: %w", err)
		}
		return c.GetProject(ctx, id)
	}},
	"create-project": {minArgs: 1, maxArgs: 1, run: func(ctx context.Context, c adapter.StaffingClient, args []string) (any, error) {
		return c.CreateProject(ctx, models.Project{Name: args[0]})
	}},
	"assignments": {run: func(ctx context.Context, c adapter.StaffingClient, _ []string) (any, error) {
		return c.ListAssignments(ctx)
	}},
	"assign": {minArgs: 2, maxArgs: 4, run: assign},
	"whoami": {run: func(ctx context.Context, c adapter.StaffingClient, _ []string) (any, error) {
		return c.Diagnostics(ctx)
	}},
	"health": {run: func(ctx context.Context, c adapter.StaffingClient, _ []string) (any, error) {
		if err := c.Health(ctx); err != nil {
			return nil, err
		}
		return map[string]string{"status": "ok"}, nil
	}},
	"version": {run: func(ctx context.Context, c adapter.StaffingClient, _ []string) (any, error) {
		return c.Version(ctx)
	}},
}

func assign(ctx context.Context, c adapter.StaffingClient, args []string) (any, error) {
	userID, err := uuid.Parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("user id: %w", err)
	}
	projectID, err := uuid.Parse(args[1])
	if err != nil {
		return nil, fmt.Errorf("project id: %w", err)
	}

	upsert := models.NewAssignmentUpsert(userID, projectID)
	if len(args) > 2 {
		begins, parseErr := models.ParseDate(args[2])
		if parseErr != nil {
			return nil, fmt.Errorf("begins: %w", parseErr)
		}
		upsert.Begins = &begins
	}
	if len(args) > 3 {
		ends, parseErr := models.ParseDate(args[3])
		if parseErr != nil {
			return nil, fmt.Errorf("ends: %w", parseErr)
		}
		upsert.Ends = &ends
	}

	return c.UpsertAssignment(ctx, upsert)
}

// execute dispatches args[0] and prints its result to out.
func execute(ctx context.Context, c adapter.StaffingClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errWrongArguments
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}

	operands := args[1:]
	if len(operands) < cmd.minArgs || len(operands) > cmd.maxArgs {
		return fmt.Errorf("%s: %w", args[0], errWrongArguments)
	}

	result, err := cmd.run(ctx, c, operands)
	if err != nil {
		return err
	}

	if s, isString := result.(string); isString {
		_, err = fmt.Fprintln(out, s)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
