package cache

import (
	"context"
	"testing"

	"github.com/trackdeck/trackdeck/internal/models"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	c, err := open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("close cache: %v", err)
		}
	})
	return c
}

// TestProjectsRoundTrip saves and reloads the project list snapshot.
func TestProjectsRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := testCache(t)

	if _, ok := c.LoadProjects(ctx); ok {
		t.Fatal("empty cache reported a snapshot")
	}

	saved := []models.Project{
		{ID: 1, Name: "Payments", Category: "Web", Tags: []string{"api"}},
		{ID: 2, Name: "Wallet", Category: "Mobile"},
	}
	c.SaveProjects(ctx, saved)

	loaded, ok := c.LoadProjects(ctx)
	if !ok {
		t.Fatal("snapshot missing after save")
	}
	if len(loaded) != 2 || loaded[0].Name != "Payments" || loaded[1].ID != 2 {
		t.Errorf("loaded = %+v", loaded)
	}
}

// TestSaveOverwrites keeps exactly one snapshot per scope.
func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	c := testCache(t)

	c.SaveProjects(ctx, []models.Project{{ID: 1, Name: "Old"}})
	c.SaveProjects(ctx, []models.Project{{ID: 1, Name: "New"}})

	loaded, ok := c.LoadProjects(ctx)
	if !ok || len(loaded) != 1 || loaded[0].Name != "New" {
		t.Errorf("loaded = %+v, want the overwritten snapshot", loaded)
	}
}

// TestIssuesScopedByProject keeps project boards apart.
func TestIssuesScopedByProject(t *testing.T) {
	ctx := context.Background()
	c := testCache(t)

	c.SaveIssues(ctx, 1, []models.Issue{{ID: 10, Title: "first", Status: models.StatusToDo}})
	c.SaveIssues(ctx, 2, []models.Issue{{ID: 20, Title: "second", Status: models.StatusDone}})

	issues, ok := c.LoadIssues(ctx, 1)
	if !ok || len(issues) != 1 || issues[0].ID != 10 {
		t.Errorf("project 1 issues = %+v", issues)
	}
	if _, ok := c.LoadIssues(ctx, 3); ok {
		t.Error("uncached project reported a snapshot")
	}
}

// TestClear wipes every scope.
func TestClear(t *testing.T) {
	ctx := context.Background()
	c := testCache(t)

	c.SaveProjects(ctx, []models.Project{{ID: 1}})
	c.SaveIssues(ctx, 1, []models.Issue{{ID: 10}})
	c.Clear(ctx)

	if _, ok := c.LoadProjects(ctx); ok {
		t.Error("projects survived Clear")
	}
	if _, ok := c.LoadIssues(ctx, 1); ok {
		t.Error("issues survived Clear")
	}
}
