package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SentEmail is a message captured by the Resend stand-in.
type SentEmail struct {
	ID            string   `json:"-"`
	Authorization string   `json:"-"`
	From          string   `json:"from"`
	To            []string `json:"to"`
	Subject       string   `json:"subject"`
	HTML          string   `json:"html"`
	Text          string   `json:"text"`
}

type resendFailure struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// ResendMock serves POST /emails the way the Resend API does, recording every
// accepted message.
type ResendMock struct {
	mu      sync.Mutex
	server  *httptest.Server
	sent    []SentEmail
	failure *resendFailure
}

func NewResendServer() *ResendMock {
	m := &ResendMock{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /emails", m.handleSend)
	m.server = httptest.NewServer(mux)
	return m
}

func (m *ResendMock) URL() string {
	return m.server.URL
}

func (m *ResendMock) Close() {
	m.server.Close()
}

// Fail makes every following send answer with the given Resend error.
func (m *ResendMock) Fail(status int, name, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = &resendFailure{StatusCode: status, Name: name, Message: message}
}

// Reset drops captured emails and any configured failure.
func (m *ResendMock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failure = nil
}

// Sent returns a copy of the accepted emails in arrival order.
func (m *ResendMock) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentEmail(nil), m.sent...)
}

func (m *ResendMock) handleSend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var email SentEmail
	if err := json.NewDecoder(r.Body).Decode(&email); err != nil {
		writeJSON(w, http.StatusBadRequest, resendFailure{
			StatusCode: http.StatusBadRequest,
			Name:       "invalid_json",
			Message:    err.Error(),
		})
		return
	}

	m.mu.Lock()
	failure := m.failure
	if failure == nil {
		email.ID = uuid.NewString()
		email.Authorization = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		m.sent = append(m.sent, email)
	}
	m.mu.Unlock()

	if failure != nil {
		writeJSON(w, failure.StatusCode, failure)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": email.ID})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
