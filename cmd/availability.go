package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/medicapp-cli/internal/application"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAvailabilityCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Show or switch a doctor's duty and intake status",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show whether you are on duty and accepting patients",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.resume(cmd.Context()); err != nil {
					return err
				}
				status, err := app.service.Availability(cmd.Context())
				if err != nil {
					return err
				}
				return writeAvailability(cmd.OutOrStdout(), status)
			},
		},
		&cobra.Command{
			Use:       "toggle <on-duty|accepting>",
			Short:     "Flip one availability switch",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on-duty", "accepting"},
			RunE: func(cmd *cobra.Command, args []string) error {
				field, err := parseAvailabilityField(args[0])
				if err != nil {
					return err
				}
				if err := app.resume(cmd.Context()); err != nil {
					return err
				}

				status, err := app.service.ToggleAvailability(cmd.Context(), application.ToggleAvailabilityCommand{Field: field})
				if err != nil {
					return err
				}
				return writeAvailability(cmd.OutOrStdout(), status)
			},
		},
	)

	return cmd
}

func parseAvailabilityField(raw string) (domain.AvailabilityField, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on-duty", "guard", string(domain.AvailabilityOnGuard):
		return domain.AvailabilityOnGuard, nil
	case "accepting", string(domain.AvailabilityAccepting):
		return domain.AvailabilityAccepting, nil
	default:
		return "", fmt.Errorf("unknown availability switch %q (want on-duty or accepting)", raw)
	}
}

func writeAvailability(out io.Writer, status domain.DoctorStatus) error {
	_, err := fmt.Fprintf(out, "on duty: %s\naccepting patients: %s\n", yesNo(status.IsOnGuard), yesNo(status.IsAccepting))
	return err
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
