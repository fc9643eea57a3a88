package domain

// CallStatus is the call lifecycle of a room. The server also reports
// in_call and ended, which are kept as-is.
type CallStatus string

const (
	CallStatusNone     CallStatus = "none"
	CallStatusInvited  CallStatus = "invited"
	CallStatusCalling  CallStatus = "calling"
	CallStatusAccepted CallStatus = "accepted"
	CallStatusRejected CallStatus = "rejected"
	CallStatusInCall   CallStatus = "in_call"
	CallStatusEnded    CallStatus = "ended"
)

var callTransitions = map[CallStatus][]CallStatus{
	CallStatusNone:     {CallStatusInvited, CallStatusCalling},
	CallStatusInvited:  {CallStatusCalling, CallStatusAccepted, CallStatusRejected, CallStatusInCall, CallStatusEnded},
	CallStatusCalling:  {CallStatusAccepted, CallStatusRejected, CallStatusInCall, CallStatusEnded},
	CallStatusAccepted: {CallStatusEnded},
	CallStatusInCall:   {CallStatusEnded},
	CallStatusRejected: {CallStatusInvited, CallStatusCalling},
	CallStatusEnded:    {CallStatusInvited, CallStatusCalling},
}

// Normalize maps the empty status to none.
func (s CallStatus) Normalize() CallStatus {
	if s == "" {
		return CallStatusNone
	}
	return s
}

// CanTransition reports whether next is a legal successor of s. Staying in
// the same state is always legal.
func (s CallStatus) CanTransition(next CallStatus) bool {
	from, to := s.Normalize(), next.Normalize()
	if from == to {
		return true
	}
	for _, candidate := range callTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// CanStartCall reports whether a doctor may start a new call episode.
func (s CallStatus) CanStartCall() bool {
	switch s.Normalize() {
	case CallStatusNone, CallStatusRejected, CallStatusEnded:
		return true
	default:
		return false
	}
}

func (s CallStatus) Terminal() bool {
	switch s.Normalize() {
	case CallStatusRejected, CallStatusEnded:
		return true
	default:
		return false
	}
}

// AdmissionPhase is the patient-side progress through a waiting-room queue.
type AdmissionPhase string

const (
	AdmissionWaitingApproval AdmissionPhase = "waiting-approval"
	AdmissionWaitingCall     AdmissionPhase = "waiting-call"
	AdmissionCallOffered     AdmissionPhase = "call-offered"
	AdmissionInCall          AdmissionPhase = "in-call"
	AdmissionRating          AdmissionPhase = "rating"
	AdmissionRejected        AdmissionPhase = "rejected"
	AdmissionDone            AdmissionPhase = "done"
)

// AdmissionPhaseFor derives the next phase from a freshly polled room.
func AdmissionPhaseFor(current AdmissionPhase, room Room) AdmissionPhase {
	switch current {
	case AdmissionWaitingApproval:
		switch room.Status {
		case RoomStatusApproved:
			if room.CallStatus.Normalize() == CallStatusCalling {
				return AdmissionCallOffered
			}
			return AdmissionWaitingCall
		case RoomStatusRejected, RoomStatusClosed:
			return AdmissionRejected
		}
	case AdmissionWaitingCall:
		if room.Status == RoomStatusRejected || room.Status == RoomStatusClosed {
			return AdmissionRejected
		}
		if room.CallStatus.Normalize() == CallStatusCalling {
			return AdmissionCallOffered
		}
	}
	return current
}
