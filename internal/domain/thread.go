package domain

// Thread is the summary line of a room in the thread list.
type Thread struct {
	RoomID     int
	Partner    string
	Status     RoomStatus
	CallStatus CallStatus
	Note       string
	Active     bool
}

// BuildThreads derives the thread list from the caller's room snapshot.
func BuildThreads(rooms []Room, role Role, currentRoomID int) []Thread {
	threads := make([]Thread, 0, len(rooms))
	for _, room := range rooms {
		threads = append(threads, Thread{
			RoomID:     room.ID,
			Partner:    room.PartnerName(role),
			Status:     room.Status,
			CallStatus: room.CallStatus.Normalize(),
			Note:       room.NoteText(),
			Active:     currentRoomID != 0 && room.ID == currentRoomID,
		})
	}
	return threads
}
