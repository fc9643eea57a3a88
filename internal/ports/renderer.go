package ports

import "github.com/bnema/medicapp-cli/internal/domain"

// Renderer receives every state change the core wants shown to the user.
// Implementations must be safe for use from the polling goroutine.
type Renderer interface {
	ShowView(view domain.View)
	RenderMessages(room domain.Room, messages []domain.Message, self domain.User)
	RenderThreads(threads []domain.Thread)
	RenderRooms(role domain.Role, rooms []domain.Room)
	RenderDoctors(doctors []domain.Doctor)
	ShowInvitation(roomID int)
	DismissInvitation()
	Alert(message string)
}
