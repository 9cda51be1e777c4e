package state

import (
	"testing"

	"github.com/trackdeck/trackdeck/internal/models"
)

// TestIssueState_StaleFetchDiscarded ensures a completion carrying an
// old generation changes nothing. Edge case: user navigates to another
// project while the first fetch is still in flight.
func TestIssueState_StaleFetchDiscarded(t *testing.T) {
	s := NewIssueState()

	gen1 := s.BeginFetch()
	gen2 := s.BeginFetch() // second fetch supersedes the first

	fresh := []models.Issue{{ID: 2, Title: "fresh"}}
	if ok := s.FinishFetch(gen2, fresh); !ok {
		t.Fatal("current-generation FinishFetch rejected")
	}

	stale := []models.Issue{{ID: 1, Title: "stale"}}
	if ok := s.FinishFetch(gen1, stale); ok {
		t.Fatal("stale FinishFetch applied")
	}

	if len(s.Issues()) != 1 || s.Issues()[0].ID != 2 {
		t.Errorf("Issues() = %+v, want only the fresh issue", s.Issues())
	}
	if s.FailFetch(gen1, "late error") {
		t.Error("stale FailFetch applied")
	}
	if s.Error() != "" {
		t.Errorf("Error() = %q after stale failure, want empty", s.Error())
	}
}

// TestIssueState_SetStatus mutates in place and reports missing ids.
func TestIssueState_SetStatus(t *testing.T) {
	s := NewIssueState()
	gen := s.BeginFetch()
	s.FinishFetch(gen, []models.Issue{{ID: 1, Status: models.StatusToDo}})

	if !s.SetStatus(1, models.StatusDone) {
		t.Fatal("SetStatus on present issue returned false")
	}
	if got := s.Get(1).Status; got != models.StatusDone {
		t.Errorf("status = %q, want DONE", got)
	}
	if s.SetStatus(99, models.StatusDone) {
		t.Error("SetStatus on missing issue returned true")
	}
}

// TestIssueState_Clear orphans in-flight fetches.
func TestIssueState_Clear(t *testing.T) {
	s := NewIssueState()
	gen := s.BeginFetch()
	s.Clear()

	if s.FinishFetch(gen, []models.Issue{{ID: 1}}) {
		t.Error("fetch from before Clear applied")
	}
	if s.Loading() {
		t.Error("Loading() = true after Clear")
	}
}

// TestSeed_DoesNotOrphanInFlightFetch ensures a snapshot seed leaves
// the generation alone: the fetch captured before the seed still
// applies, and a seed never overwrites an installed collection.
func TestSeed_DoesNotOrphanInFlightFetch(t *testing.T) {
	s := NewIssueState()
	gen := s.BeginFetch()

	if !s.Seed([]models.Issue{{ID: 90, Title: "from disk"}}) {
		t.Fatal("Seed into an empty collection rejected")
	}
	if !s.FinishFetch(gen, []models.Issue{{ID: 2, Title: "fresh"}}) {
		t.Fatal("fetch from before the seed was discarded")
	}
	if len(s.Issues()) != 1 || s.Issues()[0].ID != 2 {
		t.Errorf("Issues() = %+v, want the fetched issue", s.Issues())
	}
	if s.Seed([]models.Issue{{ID: 91}}) {
		t.Error("Seed overwrote an installed collection")
	}

	p := NewProjectState()
	pgen := p.BeginFetch()
	if !p.Seed([]models.Project{{ID: 50, Name: "from disk"}}) {
		t.Fatal("project Seed into an empty collection rejected")
	}
	if !p.FinishFetch(pgen, []models.Project{{ID: 1, Name: "fresh"}}) {
		t.Fatal("project fetch from before the seed was discarded")
	}
	if len(p.Projects()) != 1 || p.Projects()[0].ID != 1 {
		t.Errorf("Projects() = %+v, want the fetched project", p.Projects())
	}
}

// TestProjectState_ReplaceUpdatesCurrent keeps the opened project in
// sync with list updates.
func TestProjectState_ReplaceUpdatesCurrent(t *testing.T) {
	s := NewProjectState()
	gen := s.BeginFetch()
	s.FinishFetch(gen, []models.Project{{ID: 1, Name: "Old"}})
	s.SetCurrent(models.Project{ID: 1, Name: "Old"})

	s.Replace(models.Project{ID: 1, Name: "New"})

	if s.Projects()[0].Name != "New" {
		t.Error("list not updated by Replace")
	}
	if s.Current() == nil || s.Current().Name != "New" {
		t.Error("current project not updated by Replace")
	}

	s.Remove(1)
	if s.Current() != nil {
		t.Error("current project survived Remove")
	}
	if len(s.Projects()) != 0 {
		t.Error("list not emptied by Remove")
	}
}

// TestConversationState_IndependentChannels keeps chat and comment
// errors separate.
func TestConversationState_IndependentChannels(t *testing.T) {
	s := NewConversationState()

	chatGen := s.BeginChatFetch()
	commentGen := s.BeginCommentFetch()

	s.FailChatFetch(chatGen, "chat down")
	s.FinishCommentFetch(commentGen, []models.Comment{{ID: 1, Content: "hi"}})

	if s.ChatError() != "chat down" {
		t.Errorf("ChatError() = %q, want chat down", s.ChatError())
	}
	if s.CommentError() != "" {
		t.Errorf("CommentError() = %q, want empty", s.CommentError())
	}
	if len(s.Comments()) != 1 {
		t.Error("comments lost alongside chat failure")
	}
}

// TestConversationState_SendingFlag gates double submission.
func TestConversationState_SendingFlag(t *testing.T) {
	s := NewConversationState()
	s.SetSending(true)
	if !s.Sending() {
		t.Fatal("Sending() = false after SetSending(true)")
	}
	s.AppendMessage(models.ChatMessage{ID: 1, Content: "hello"})
	s.SetSending(false)
	if s.Sending() || len(s.Messages()) != 1 {
		t.Error("message append or sending reset failed")
	}
}
