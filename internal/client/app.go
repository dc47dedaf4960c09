package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-posts/internal/adapter"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
)

type App struct {
	api      adapter.PostsAPI
	out      io.Writer
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewApp(api adapter.PostsAPI, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:      api,
		out:      out,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Run implements [Client]. Every command gets its own trace id, which the
// adapter forwards to the server.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	traceID := a.traceIDs.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	log := a.logger.With().Str("trace_id", traceID).Str("command", args[0]).Logger()

	result, err := a.dispatch(ctx, args[0], args[1:])
	if err != nil {
		log.Err(err).Str("func", "*App.Run").Msg("command failed")
		return err
	}
	log.Debug().Str("func", "*App.Run").Msg("command done")

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (a *App) dispatch(ctx context.Context, command string, args []string) (any, error) {
	switch command {
	case "list":
		if err := expectArgs(command, args, 0); err != nil {
			return nil, err
		}
		return a.api.ListPublished(ctx)
	case "count":
		if err := expectArgs(command, args, 0); err != nil {
			return nil, err
		}
		return a.api.RequestCount(ctx)
	case "new":
		if err := expectArgs(command, args, 2); err != nil {
			return nil, err
		}
		created, err := a.api.Create(ctx, models.NewPost{Title: args[0], Body: args[1]})
		if err != nil {
			return nil, err
		}
		return createdPost{ID: created.ID, NewPost: created}, nil
	case "get", "publish", "delete":
		if err := expectArgs(command, args, 1); err != nil {
			return nil, err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: post id %q is not a number", ErrUsage, args[0])
		}
		return a.byID(ctx, command, id)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// createdPost prints the id the server assigned next to the payload.
type createdPost struct {
	ID int64 `json:"id"`
	models.NewPost
}

func (a *App) byID(ctx context.Context, command string, id int64) (models.Post, error) {
	switch command {
	case "publish":
		return a.api.Publish(ctx, id)
	case "delete":
		return a.api.Delete(ctx, id)
	default:
		return a.api.Get(ctx, id)
	}
}

func expectArgs(command string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, command, n, len(args))
	}
	return nil
}
