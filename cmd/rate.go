package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/medicapp-cli/internal/application"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <doctor-id> <1-5> [comment...]",
		Short: "Rate a consultation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, err := parseID("doctor", args[0])
			if err != nil {
				return err
			}
			rating, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("%w, got %q", domain.ErrInvalidRating, args[1])
			}
			rate := application.RateCommand{DoctorID: doctorID, Rating: rating, Comment: strings.Join(args[2:], " ")}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			saved, err := app.admission(nil, nil).SubmitRating(cmd.Context(), rate.DoctorID, rate.Rating, rate.Comment)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Thanks! You rated doctor %d %d/%d.\n", saved.DoctorID, saved.Rating, domain.MaxRating)
			return err
		},
	}
}
