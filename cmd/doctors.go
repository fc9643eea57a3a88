package cmd

import (
	"fmt"

	"github.com/bnema/medicapp-cli/internal/adapters/render/console"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDoctorsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Browse doctors, their availability and ratings",
	}

	cmd.AddCommand(
		newDoctorsListCmd(app),
		newDoctorsOnDutyCmd(app),
		newDoctorsProfileCmd(app),
	)

	return cmd
}

func newDoctorsListCmd(app *app) *cobra.Command {
	var name string
	var onDuty bool
	var accepting bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"search"},
		Short:   "List doctors, optionally filtered",
		Long:    "List doctors. --name matches part of the name; --on-duty and --accepting filter only when given, so --on-duty=false lists doctors off duty.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}
			if asJSON {
				app.renderer.Mute()
			}

			filter := domain.DoctorFilter{Name: name}
			if cmd.Flags().Changed("on-duty") {
				filter.OnGuard = &onDuty
			}
			if cmd.Flags().Changed("accepting") {
				filter.IsAccepting = &accepting
			}

			doctors, err := app.service.Doctors(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), doctors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "part of the doctor's name")
	cmd.Flags().BoolVar(&onDuty, "on-duty", false, "only doctors on duty (or off duty with =false)")
	cmd.Flags().BoolVar(&accepting, "accepting", false, "only doctors accepting patients (or not with =false)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON output")

	return cmd
}

func newDoctorsOnDutyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "on-duty",
		Short: "List doctors currently on duty",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}
			_, err := app.service.DoctorsOnDuty(cmd.Context())
			return err
		},
	}
}

func newDoctorsProfileCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile <doctor-id>",
		Short: "Show a doctor with their ratings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, err := parseID("doctor", args[0])
			if err != nil {
				return err
			}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			profile, err := app.service.DoctorProfile(cmd.Context(), doctorID)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), profile)
			}

			rendered, err := app.profileRenderer(profile, console.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render doctor profile: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON output")

	return cmd
}
