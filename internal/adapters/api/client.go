package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
)

// Client maps every backend endpoint onto a typed method.
type Client struct {
	gateway *Gateway
}

var _ ports.MedicappAPI = (*Client)(nil)

func NewClient(gateway *Gateway) *Client {
	return &Client{gateway: gateway}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type availability struct {
	IsOnGuard   bool `json:"is_on_guard"`
	IsAccepting bool `json:"is_accepting"`
}

type guardRequest struct {
	DoctorID int     `json:"doctor_id"`
	Note     *string `json:"note,omitempty"`
}

type queueRequest struct {
	DoctorID int `json:"doctor_id"`
}

type messageRequest struct {
	Content string `json:"content"`
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	var pair domain.TokenPair
	err := c.gateway.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body:   credentials{Email: email, Password: password},
		Public: true,
	}, &pair)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if pair.AccessToken == "" {
		return domain.TokenPair{}, errEmptyAccessToken
	}
	return pair, nil
}

func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (domain.User, error) {
	var user domain.User
	err := c.gateway.Do(ctx, Request{Method: http.MethodPost, Path: registerPath, Body: req, Public: true}, &user)
	return user, err
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := c.get(ctx, "/users/me", &user)
	return user, err
}

func (c *Client) Doctors(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	err := c.get(ctx, "/doctors", &doctors)
	return doctors, err
}

func (c *Client) Doctor(ctx context.Context, doctorID int) (domain.Doctor, error) {
	var doctor domain.Doctor
	err := c.get(ctx, "/doctors/"+strconv.Itoa(doctorID), &doctor)
	return doctor, err
}

func (c *Client) DoctorRatings(ctx context.Context, doctorID int) ([]domain.Rating, error) {
	var ratings []domain.Rating
	err := c.get(ctx, fmt.Sprintf("/doctors/%d/ratings", doctorID), &ratings)
	return ratings, err
}

func (c *Client) DoctorStatus(ctx context.Context) (domain.DoctorStatus, error) {
	var status domain.DoctorStatus
	err := c.get(ctx, "/doctor/status", &status)
	return status, err
}

func (c *Client) SetDoctorStatus(ctx context.Context, onGuard, accepting bool) (domain.DoctorStatus, error) {
	var status domain.DoctorStatus
	err := c.gateway.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/doctor/status",
		Body:   availability{IsOnGuard: onGuard, IsAccepting: accepting},
	}, &status)
	return status, err
}

func (c *Client) PatientRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := c.get(ctx, "/patient/waiting-rooms", &rooms)
	return rooms, err
}

func (c *Client) DoctorRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := c.get(ctx, "/doctor/waiting-rooms", &rooms)
	return rooms, err
}

func (c *Client) RequestGuard(ctx context.Context, doctorID int, note string) (domain.Room, error) {
	body := guardRequest{DoctorID: doctorID}
	if note != "" {
		body.Note = &note
	}

	var room domain.Room
	err := c.gateway.Do(ctx, Request{Method: http.MethodPost, Path: "/waiting-room", Body: body}, &room)
	return room, err
}

func (c *Client) Messages(ctx context.Context, roomID int) ([]domain.Message, error) {
	var messages []domain.Message
	err := c.get(ctx, fmt.Sprintf("/waiting-room/%d/messages", roomID), &messages)
	return messages, err
}

func (c *Client) SendMessage(ctx context.Context, roomID int, content string) (domain.Message, error) {
	var message domain.Message
	err := c.gateway.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/waiting-room/%d/messages", roomID),
		Body:   messageRequest{Content: content},
	}, &message)
	return message, err
}

func (c *Client) StartCall(ctx context.Context, roomID int) (domain.Room, error) {
	var room domain.Room
	err := c.gateway.Do(ctx, Request{Method: http.MethodPut, Path: fmt.Sprintf("/waiting-room/%d/start-call", roomID)}, &room)
	return room, err
}

func (c *Client) RespondCall(ctx context.Context, roomID int, accept bool) (domain.Room, error) {
	var room domain.Room
	err := c.gateway.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/waiting-room/%d/respond-call", roomID),
		Query:  url.Values{"accept": []string{strconv.FormatBool(accept)}},
	}, &room)
	return room, err
}

func (c *Client) JoinQueue(ctx context.Context, doctorID int) (domain.Room, error) {
	var room domain.Room
	err := c.gateway.Do(ctx, Request{Method: http.MethodPost, Path: "/waiting-rooms", Body: queueRequest{DoctorID: doctorID}}, &room)
	return room, err
}

func (c *Client) QueueRoom(ctx context.Context, roomID int) (domain.Room, error) {
	var room domain.Room
	err := c.get(ctx, "/waiting-rooms/"+strconv.Itoa(roomID), &room)
	return room, err
}

func (c *Client) SubmitRating(ctx context.Context, rating domain.RatingSubmission) (domain.Rating, error) {
	var saved domain.Rating
	err := c.gateway.Do(ctx, Request{Method: http.MethodPost, Path: "/ratings", Body: rating}, &saved)
	return saved, err
}

func (c *Client) Profile(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile
	err := c.get(ctx, "/users/me/profile", &profile)
	return profile, err
}

func (c *Client) UpdateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	update := domain.Profile{
		Specialty:       profile.Specialty,
		ExperienceYears: profile.ExperienceYears,
		BirthDate:       profile.BirthDate,
		MedicalHistory:  profile.MedicalHistory,
		Allergies:       profile.Allergies,
		Avatar:          profile.Avatar,
	}

	var saved domain.Profile
	err := c.gateway.Do(ctx, Request{Method: http.MethodPut, Path: "/users/me/profile", Body: update}, &saved)
	return saved, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.gateway.Do(ctx, Request{Method: http.MethodGet, Path: path}, out)
}
