package domain

import "strings"

// Match reports whether the doctor satisfies every set criterion. The name
// matches case-insensitively on a substring.
func (f DoctorFilter) Match(doctor Doctor) bool {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	if name != "" && !strings.Contains(strings.ToLower(doctor.Name), name) {
		return false
	}
	if f.OnGuard != nil && doctor.IsOnGuard != *f.OnGuard {
		return false
	}
	if f.IsAccepting != nil && doctor.IsAccepting != *f.IsAccepting {
		return false
	}
	return true
}

func FilterDoctors(doctors []Doctor, filter DoctorFilter) []Doctor {
	out := make([]Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if filter.Match(doctor) {
			out = append(out, doctor)
		}
	}
	return out
}
