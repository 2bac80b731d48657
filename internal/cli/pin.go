package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal/models"
)

func newPinCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the journal PIN",
	}

	cmd.AddCommand(
		newPinSetCmd(a),
		newPinVerifyCmd(a),
		newPinStatusCmd(a),
	)

	return cmd
}

// newPinSetCmd sets or replaces the PIN. Replacing requires the current PIN
// through the regular unlock.
func newPinSetCmd(a *app) *cobra.Command {
	var newPin string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or change the PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pin := models.Pin(newPin)
			if pin == "" {
				var err error
				if pin, err = a.promptNewPin(cmd); err != nil {
					return err
				}
			}

			if err := a.services().Access.SetPin(cmd.Context(), pin); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "PIN set")
			return nil
		},
	}

	cmd.Flags().StringVar(&newPin, "new-pin", "", "new PIN (prompted for when omitted)")

	return cmd
}

func (a *app) promptNewPin(cmd *cobra.Command) (models.Pin, error) {
	pin, err := a.promptPin(cmd.ErrOrStderr(), "New PIN: ")
	if err != nil {
		return "", err
	}
	confirm, err := a.promptPin(cmd.ErrOrStderr(), "Repeat new PIN: ")
	if err != nil {
		return "", err
	}
	if pin != confirm {
		return "", ErrPinMismatch
	}
	return pin, nil
}

func newPinVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "verify",
		Short:       "Check a PIN without doing anything else",
		Args:        cobra.NoArgs,
		Annotations: skipPin,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pin, err := a.currentPin(cmd)
			if err != nil {
				return err
			}

			ok, err := a.services().Access.VerifyPin(cmd.Context(), pin)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAccessDenied
			}

			fmt.Fprintln(cmd.OutOrStdout(), "PIN accepted")
			return nil
		},
	}
}

func newPinStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "status",
		Short:       "Tell whether a PIN is set",
		Args:        cobra.NoArgs,
		Annotations: skipPin,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hasPin, err := a.services().Access.HasPin(cmd.Context())
			if err != nil {
				return err
			}

			if hasPin {
				fmt.Fprintln(cmd.OutOrStdout(), "PIN is set")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No PIN set")
			}
			return nil
		},
	}
}
