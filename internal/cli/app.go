// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/content"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

const logRole = "go-journal"

// session is what one command invocation works with.
type session struct {
	services *service.Services
	logger   *logger.Logger
	close    func() error
}

// bootstrapFunc opens the journal described by cfg.
type bootstrapFunc func(ctx context.Context, cfg *config.StructuredConfig) (*session, error)

// app holds the state shared by all commands of one invocation.
type app struct {
	info models.AppBuildInfo
	boot bootstrapFunc

	flagCfg *config.StructuredConfig
	pin     string

	sess *session

	now          func() time.Time
	readPassword func(fd int) ([]byte, error)
	copyText     func(text string) error
	markdown     *content.Renderer
	traceIDs     *utils.UUIDGenerator
}

func newApp(info models.AppBuildInfo, boot bootstrapFunc) *app {
	return &app{
		info:         info,
		boot:         boot,
		now:          time.Now,
		readPassword: term.ReadPassword,
		copyText:     clipboard.WriteAll,
		markdown:     content.NewRenderer(),
		traceIDs:     utils.NewUUIDGenerator(),
	}
}

// bootstrap opens the file logger, the storages and the services.
func bootstrap(_ context.Context, cfg *config.StructuredConfig) (*session, error) {
	log, err := logger.NewFileLogger(logRole, cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	storages := store.NewStorages(cfg.Storage, log)

	return &session{
		services: service.NewServices(storages, *cfg, log),
		logger:   log,
		close:    storages.Close,
	}, nil
}

func (a *app) services() *service.Services {
	return a.sess.services
}

// open loads the configuration, opens the journal and attaches a logger with
// a fresh trace id to the command context.
func (a *app) open(cmd *cobra.Command) (context.Context, error) {
	cfg, err := config.GetStructuredConfig(a.flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	sess, err := a.boot(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	a.sess = sess

	traceID := a.traceIDs.Generate()
	log := sess.logger.WithTraceID(traceID)

	ctx := utils.WithTraceID(cmd.Context(), traceID)
	ctx = log.WithContext(ctx)
	cmd.SetContext(ctx)

	log.Debug().
		Str("func", "app.open").
		Str("command", cmd.CommandPath()).
		Msg("command started")

	return ctx, nil
}

// unlock asks for the PIN when one is set and verifies it.
func (a *app) unlock(ctx context.Context, cmd *cobra.Command) error {
	hasPin, err := a.services().Access.HasPin(ctx)
	if err != nil {
		return err
	}
	if !hasPin {
		return nil
	}

	pin, err := a.currentPin(cmd)
	if err != nil {
		return err
	}

	ok, err := a.services().Access.VerifyPin(ctx, pin)
	if err != nil {
		return err
	}
	if !ok {
		logger.FromContext(ctx).Warn().Str("func", "app.unlock").Msg("access denied")
		return ErrAccessDenied
	}
	return nil
}

// currentPin returns the --pin value or prompts for it.
func (a *app) currentPin(cmd *cobra.Command) (models.Pin, error) {
	if a.pin != "" {
		return models.Pin(a.pin), nil
	}
	return a.promptPin(cmd.ErrOrStderr(), "PIN: ")
}

// promptPin reads a PIN from the terminal without echo.
func (a *app) promptPin(w io.Writer, prompt string) (models.Pin, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := a.readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("error reading PIN: %w", err)
	}
	return models.Pin(strings.TrimSpace(string(pw))), nil
}

// withTraceID appends the trace id of the invocation to err so the failure
// can be found in the log file.
func withTraceID(ctx context.Context, err error) error {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%w (trace id %s)", err, traceID)
}

// shutdown releases the session, if one was opened.
func (a *app) shutdown() error {
	if a.sess == nil || a.sess.close == nil {
		return nil
	}
	err := a.sess.close()
	a.sess = nil
	return err
}
