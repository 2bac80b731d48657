// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/models"
)

// Command annotations understood by the root pre-run hook.
const (
	annotationNoStorage = "journal/no-storage"
	annotationNoPin     = "journal/no-pin"
)

var (
	skipStorage = map[string]string{annotationNoStorage: "true"}
	skipPin     = map[string]string{annotationNoPin: "true"}
)

// Execute builds the journal command tree and runs it with os.Args.
func Execute(ctx context.Context, info models.AppBuildInfo) error {
	a := newApp(info, bootstrap)
	defer a.shutdown()

	return newRootCmd(a).ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "journal",
		Short: "A private day-by-day journal",
		Long: "journal keeps one entry per calendar day in a local SQLite file,\n" +
			"optionally protected by a PIN.",
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
	}

	pf := root.PersistentFlags()
	a.flagCfg = config.BindFlags(pf)
	pf.StringVar(&a.pin, "pin", "", "journal PIN (prompted for when omitted)")

	root.AddCommand(
		newWriteCmd(a),
		newShowCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newRangeCmd(a),
		newStatsCmd(a),
		newPinCmd(a),
		newExportCmd(a),
		newVersionCmd(a),
	)

	return root
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationNoStorage] != "" {
		return nil
	}

	ctx, err := a.open(cmd)
	if err != nil {
		return err
	}

	if cmd.Annotations[annotationNoPin] != "" {
		return nil
	}
	return a.unlock(ctx, cmd)
}
