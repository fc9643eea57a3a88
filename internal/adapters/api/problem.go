package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const genericErrorDetail = "unexpected error"

// ProblemError is a non-2xx, non-401 answer from the backend.
type ProblemError struct {
	Status    int
	Detail    string
	RequestID string
}

func (e *ProblemError) Error() string {
	return e.Detail
}

type problemPayload struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

func decodeProblem(resp *http.Response, requestID string) *ProblemError {
	problem := &ProblemError{Status: resp.StatusCode, Detail: genericErrorDetail, RequestID: requestID}

	var payload problemPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return problem
	}
	if detail := problemDetail(payload.Detail); detail != "" {
		problem.Detail = detail
	}

	return problem
}

// problemDetail accepts a plain string or a validation list and returns the
// first message.
func problemDetail(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var items []validationItem
	if err := json.Unmarshal(raw, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}

	var other any
	if err := json.Unmarshal(raw, &other); err == nil && other != nil {
		return fmt.Sprint(other)
	}

	return ""
}
