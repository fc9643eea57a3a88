package console

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/medicapp-cli/internal/application"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func renderStatus(status application.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("MedicApp session"),
		s.header.Render(fmt.Sprintf("profile: %s  server: %s", status.Profile, status.BaseURL)),
	}

	if status.Record != nil {
		record := status.Record
		lines = append(lines, s.section.Render(s.partner.Render(fmt.Sprintf("%s <%s>", record.Name, record.Email))))
		lines = append(lines, s.detail.Render(fmt.Sprintf("role: %s  user id: %d", record.Role, record.UserID)))
		lines = append(lines, s.detail.Render("signed in "+formatClock(record.LoggedInAt, opts.Now)))
	} else {
		lines = append(lines, s.section.Render(s.empty.Render("Not signed in.")))
	}

	lines = append(lines, s.detail.Render("access token: "+presence(status.HasAccessToken)))
	lines = append(lines, s.detail.Render("refresh token: "+presence(status.HasRefreshToken)))

	if claims := status.Claims; claims != nil && !claims.ExpiresAt.IsZero() {
		line := s.detail.Render(formatExpiryRelative(claims.ExpiresAt, opts.Now))
		if !opts.Now.IsZero() && claims.Expired(opts.Now) {
			line += " " + s.warning.Render("[expired]")
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDoctorProfile(profile application.DoctorProfile, opts RenderOptions, s styles) string {
	doctor := profile.Doctor
	lines := []string{
		s.title.Render(doctor.Name),
		s.header.Render(doctorDetails(doctor)),
	}

	if !profile.Rated {
		lines = append(lines, s.section.Render(s.empty.Render("No ratings yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	scoreStyle := lipgloss.NewStyle().Foreground(interpolateColor(profile.Average, domain.MinRating, domain.MaxRating))
	lines = append(lines, s.section.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderStars(profile.Average, s),
		" ",
		scoreStyle.Render(fmt.Sprintf("%.1f/5", profile.Average)),
		" ",
		s.badge.Render(fmt.Sprintf("(%d ratings)", len(profile.Ratings))),
	)))

	for _, rating := range profile.Ratings {
		comment := "-"
		if rating.Comment != nil && strings.TrimSpace(*rating.Comment) != "" {
			comment = strings.TrimSpace(*rating.Comment)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			s.clock.Render(formatClock(rating.CreatedAt.Time, opts.Now)),
			s.detail.Render(fmt.Sprintf("%d/5", rating.Rating)),
			comment,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDoctors(doctors []domain.Doctor, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("doctors: %d", len(doctors)))}
	if len(doctors) == 0 {
		lines = append(lines, s.empty.Render("No doctors match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, doctor := range doctors {
		line := fmt.Sprintf("#%d %s", doctor.ID, s.partner.Render(doctor.Name))
		if details := doctorDetails(doctor); details != "" {
			line += "  " + s.detail.Render(details)
		}
		if doctor.IsOnGuard {
			line += " " + s.active.Render("[on duty]")
		}
		if doctor.IsAccepting {
			line += " " + s.badge.Render("[accepting]")
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRooms(role domain.Role, rooms []domain.Room, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("rooms: %d", len(rooms)))}
	if len(rooms) == 0 {
		lines = append(lines, s.empty.Render("No rooms yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, room := range rooms {
		line := fmt.Sprintf("#%d %s %s", room.ID, s.partner.Render(room.PartnerName(role)), s.badge.Render(string(room.Status)))
		if call := room.CallStatus.Normalize(); call != domain.CallStatusNone {
			line += " " + s.invitation.Render("call: "+string(call))
		}
		if room.QueuePosition != nil {
			line += " " + s.badge.Render(fmt.Sprintf("queue: %d", *room.QueuePosition))
		}
		if note := room.NoteText(); note != "" {
			line += "  " + s.detail.Render(note)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderThreads(threads []domain.Thread, s styles) string {
	if len(threads) == 0 {
		return s.empty.Render("No conversations.")
	}

	lines := make([]string, 0, len(threads))
	for _, thread := range threads {
		marker := "  "
		partner := s.partner.Render(thread.Partner)
		if thread.Active {
			marker = s.active.Render(">") + " "
			partner = s.active.Render(thread.Partner)
		}
		line := fmt.Sprintf("%s#%d %s %s", marker, thread.RoomID, partner, s.badge.Render(string(thread.Status)))
		if thread.CallStatus != domain.CallStatusNone {
			line += " " + s.invitation.Render("call: "+string(thread.CallStatus))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(room domain.Room, message domain.Message, self domain.User, now time.Time, s styles) string {
	sender := s.partner.Render(room.ParticipantName(message.SenderID))
	if self.ID != 0 && message.SenderID == self.ID {
		sender = s.self.Render("You")
	}

	return fmt.Sprintf("%s %s: %s", s.clock.Render("["+formatClock(message.CreatedAt.Time, now)+"]"), sender, message.Content)
}

func renderStars(average float64, s styles) string {
	filled := int(math.Round(average))
	if filled < 0 {
		filled = 0
	}
	if filled > domain.MaxRating {
		filled = domain.MaxRating
	}

	fill := lipgloss.NewStyle().Foreground(interpolateColor(average, domain.MinRating, domain.MaxRating))
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("*", filled)),
		s.barEmpty.Render(strings.Repeat("-", domain.MaxRating-filled)),
		s.barBracket.Render("]"),
	)
}

func doctorDetails(doctor domain.Doctor) string {
	parts := make([]string, 0, 2)
	if specialty := strings.TrimSpace(doctor.Specialty); specialty != "" {
		parts = append(parts, specialty)
	}
	if doctor.ExperienceYears != nil {
		suffix := "years"
		if *doctor.ExperienceYears == 1 {
			suffix = "year"
		}
		parts = append(parts, fmt.Sprintf("%d %s", *doctor.ExperienceYears, suffix))
	}
	return strings.Join(parts, ", ")
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "none"
}

func formatClock(at, now time.Time) string {
	if at.IsZero() {
		return "--:--"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return at.Format("15:04")
	}

	return at.Format("15:04 on 02 Jan")
}

func formatExpiryRelative(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "access token expires " + formatClock(expiresAt, now)
	}
	if !expiresAt.After(now) {
		return "access token expired at " + formatClock(expiresAt, now)
	}

	remaining := expiresAt.Sub(now)
	if remaining < time.Hour {
		minutes := int(math.Ceil(remaining.Minutes()))
		suffix := "minutes"
		if minutes == 1 {
			suffix = "minute"
		}
		return fmt.Sprintf("access token expires in %d %s (%s)", minutes, suffix, expiresAt.Format("15:04"))
	}

	hours := int(math.Ceil(remaining.Hours()))
	suffix := "hours"
	if hours == 1 {
		suffix = "hour"
	}
	return fmt.Sprintf("access token expires in %d %s (%s)", hours, suffix, formatClock(expiresAt, now))
}

// interpolateColor maps value onto the 240-255 greyscale ramp, brightest at max.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}

func viewTitle(view domain.View) string {
	switch view {
	case domain.ViewLogin:
		return "Sign in"
	case domain.ViewRegister:
		return "Create account"
	case domain.ViewPatientDashboard:
		return "Patient dashboard"
	case domain.ViewDoctorDashboard:
		return "Doctor dashboard"
	case domain.ViewMessages:
		return "Messages"
	case domain.ViewGuardia:
		return "Doctors on duty"
	case domain.ViewWaitingApproval:
		return "Waiting for the doctor to approve your request"
	case domain.ViewWaitingRoom:
		return "Waiting room"
	case domain.ViewRating:
		return "Rate your consultation"
	case domain.ViewProfile:
		return "Profile"
	default:
		return string(view)
	}
}
