package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
)

const birthDateLayout = "2006-01-02"

var errNothingToUpdate = errors.New("nothing to update: pass at least one field flag")

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileUpdateCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			profile, err := app.service.Profile(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), profile)
			}
			return writeProfile(cmd.OutOrStdout(), profile)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON output")

	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var specialty string
	var experienceYears int
	var birthDate string
	var medicalHistory string
	var allergies string
	var avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields; only the flags given are sent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			var update domain.Profile
			if flags.Changed("specialty") {
				update.Specialty = &specialty
			}
			if flags.Changed("experience-years") {
				if experienceYears < 0 {
					return fmt.Errorf("experience years must not be negative, got %d", experienceYears)
				}
				update.ExperienceYears = &experienceYears
			}
			if flags.Changed("birth-date") {
				parsed, err := time.Parse(birthDateLayout, strings.TrimSpace(birthDate))
				if err != nil {
					return fmt.Errorf("birth date must look like %s: %w", birthDateLayout, err)
				}
				born := domain.NewTimestamp(parsed)
				update.BirthDate = &born
			}
			if flags.Changed("medical-history") {
				update.MedicalHistory = &medicalHistory
			}
			if flags.Changed("allergies") {
				update.Allergies = &allergies
			}
			if flags.Changed("avatar") {
				update.Avatar = &avatar
			}
			if update == (domain.Profile{}) {
				return errNothingToUpdate
			}

			if err := app.resume(cmd.Context()); err != nil {
				return err
			}
			saved, err := app.service.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}
			return writeProfile(cmd.OutOrStdout(), saved)
		},
	}

	cmd.Flags().StringVar(&specialty, "specialty", "", "medical specialty (doctors)")
	cmd.Flags().IntVar(&experienceYears, "experience-years", 0, "years of practice (doctors)")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date as YYYY-MM-DD (patients)")
	cmd.Flags().StringVar(&medicalHistory, "medical-history", "", "relevant medical history (patients)")
	cmd.Flags().StringVar(&allergies, "allergies", "", "known allergies (patients)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL")

	return cmd
}

func writeProfile(out io.Writer, profile domain.Profile) error {
	lines := []string{fmt.Sprintf("%s <%s> (%s)", profile.Name, profile.Email, profile.Role)}
	if profile.Specialty != nil {
		lines = append(lines, "specialty: "+*profile.Specialty)
	}
	if profile.ExperienceYears != nil {
		lines = append(lines, fmt.Sprintf("experience: %d years", *profile.ExperienceYears))
	}
	if profile.BirthDate != nil && !profile.BirthDate.IsZero() {
		lines = append(lines, "birth date: "+profile.BirthDate.Format(birthDateLayout))
	}
	if profile.MedicalHistory != nil {
		lines = append(lines, "medical history: "+*profile.MedicalHistory)
	}
	if profile.Allergies != nil {
		lines = append(lines, "allergies: "+*profile.Allergies)
	}
	if profile.Avatar != nil {
		lines = append(lines, "avatar: "+*profile.Avatar)
	}

	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}
