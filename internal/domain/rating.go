package domain

import "strings"

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	DoctorID  int       `json:"doctor_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
}

type RatingSubmission struct {
	DoctorID int    `json:"doctor_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func NewRatingSubmission(doctorID, rating int, comment string) (RatingSubmission, error) {
	if rating < MinRating || rating > MaxRating {
		return RatingSubmission{}, ErrInvalidRating
	}

	return RatingSubmission{DoctorID: doctorID, Rating: rating, Comment: strings.TrimSpace(comment)}, nil
}

// AverageRating returns the mean score and whether any rating exists.
func AverageRating(ratings []Rating) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}

	total := 0
	for _, r := range ratings {
		total += r.Rating
	}

	return float64(total) / float64(len(ratings)), true
}
