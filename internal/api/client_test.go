package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/trackdeck/trackdeck/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(url string) *Client {
	return New(url, 2*time.Second, staticToken("test-token"))
}

// TestListIssues_EnvelopeUnwrap decodes the `{ data, message }` wrapper.
func TestListIssues_EnvelopeUnwrap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}
		_, _ = w.Write([]byte(`{"data":[{"id":1,"title":"First","status":"TO_DO","priority":"LOW"}],"message":"ok"}`))
	}))
	defer srv.Close()

	issues, found, err := newTestClient(srv.URL).ListIssues(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListIssues() error = %v", err)
	}
	if !found {
		t.Error("found = false, want true")
	}
	if len(issues) != 1 || issues[0].Title != "First" {
		t.Errorf("issues = %+v, want one issue titled First", issues)
	}
}

// TestListProjects_RawArray falls back to decoding a bare JSON array.
func TestListProjects_RawArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") != "Mobile" {
			t.Errorf("category query = %q, want Mobile", r.URL.Query().Get("category"))
		}
		_, _ = w.Write([]byte(`[{"id":3,"name":"App","category":"Mobile"}]`))
	}))
	defer srv.Close()

	projects, found, err := newTestClient(srv.URL).ListProjects(context.Background(), "Mobile", "")
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if !found || len(projects) != 1 || projects[0].Name != "App" {
		t.Errorf("projects = %+v found=%v, want one project App", projects, found)
	}
}

// TestList_NotFoundIsExplicitlyEmpty distinguishes a missing collection
// (404 on a list endpoint) from an error, without guessing from message
// text.
func TestList_NotFoundIsExplicitlyEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No issues found"}`))
	}))
	defer srv.Close()

	issues, found, err := newTestClient(srv.URL).ListIssues(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListIssues() error = %v, want nil for list 404", err)
	}
	if found {
		t.Error("found = true, want false for 404")
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want empty", issues)
	}
}

// TestDetail_NotFoundIsError keeps 404 an error on detail endpoints.
func TestDetail_NotFoundIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Issue not found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetIssueDetail(context.Background(), 9)
	if !IsKind(err, KindNotFound) {
		t.Fatalf("GetIssueDetail() error = %v, want KindNotFound", err)
	}
	if got := Message(err); got != "Issue not found" {
		t.Errorf("Message() = %q, want server text", got)
	}
}

// TestUnauthorized_FiresHook ensures 401 invokes the session-clearing
// hook exactly once and classifies as KindUnauthorized.
func TestUnauthorized_FiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	fired := 0
	client.OnUnauthorized = func() { fired++ }

	_, err := client.GetProfile(context.Background())
	if !IsKind(err, KindUnauthorized) {
		t.Fatalf("GetProfile() error = %v, want KindUnauthorized", err)
	}
	if fired != 1 {
		t.Errorf("OnUnauthorized fired %d times, want 1", fired)
	}
}

// TestConflict_DetailsParsed extracts the duplicate-invitation payload
// from a 409: data.details = { canResend, email, projectId }.
func TestConflict_DetailsParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Invitation already sent","data":{"details":{"canResend":true,"email":"bob@example.com","projectId":12}}}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendInvitation(context.Background(), InvitationRequest{
		Email:     "bob@example.com",
		ProjectID: 12,
	})
	details, ok := Conflict(err)
	if !ok {
		t.Fatalf("Conflict() not detected, err = %v", err)
	}
	if !details.CanResend || details.Email != "bob@example.com" || details.ProjectID != 12 {
		t.Errorf("details = %+v, want canResend for bob@example.com/12", details)
	}
}

// TestValidation_MessageVerbatim surfaces the server's 400 text as-is.
func TestValidation_MessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Title must not be empty"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateProject(context.Background(), models.ProjectDraft{})
	if !IsKind(err, KindValidation) {
		t.Fatalf("error = %v, want KindValidation", err)
	}
	if Message(err) != "Title must not be empty" {
		t.Errorf("Message() = %q, want verbatim server text", Message(err))
	}
}

// TestBreaker_OpensAfterConsecutiveFailures ensures repeated transport
// failures trip the breaker and later calls fail fast as KindNetwork.
func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // every request now fails at the transport level

	client := newTestClient(url)
	for i := 0; i < 5; i++ {
		_, _ = client.GetProfile(context.Background())
	}

	_, err := client.GetProfile(context.Background())
	if !IsKind(err, KindNetwork) {
		t.Fatalf("error after breaker trip = %v, want KindNetwork", err)
	}
	if !strings.Contains(Message(err), "unavailable") {
		t.Errorf("Message() = %q, want fail-fast unavailable text", Message(err))
	}
}

// TestServerError_Kind maps 5xx to KindServer and keeps the message.
func TestServerError_Kind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetProfile(context.Background())
	if !IsKind(err, KindServer) {
		t.Fatalf("error = %v, want KindServer", err)
	}
}

// TestAnonEndpoint_NoAuthHeader keeps pre-login calls tokenless.
func TestAnonEndpoint_NoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q on anon endpoint, want empty", got)
		}
		_, _ = w.Write([]byte(`{"data":{"email":"x@y.co","projectName":"P"}}`))
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).GetInvitationDetails(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("GetInvitationDetails() error = %v", err)
	}
	if details.ProjectName != "P" {
		t.Errorf("ProjectName = %q, want P", details.ProjectName)
	}
}
