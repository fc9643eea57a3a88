package domain

type View string

const (
	ViewLogin            View = "login"
	ViewRegister         View = "register"
	ViewPatientDashboard View = "patient-view"
	ViewDoctorDashboard  View = "doctor-view"
	ViewMessages         View = "messages-view"
	ViewGuardia          View = "guardia-view"
	ViewWaitingApproval  View = "waiting-approval"
	ViewWaitingRoom      View = "waiting-room"
	ViewRating           View = "rating-view"
	ViewProfile          View = "profile-view"
)

// DefaultView is the dashboard a user lands on after login.
func DefaultView(role Role) View {
	if role == RoleDoctor {
		return ViewDoctorDashboard
	}
	return ViewPatientDashboard
}
