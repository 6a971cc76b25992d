package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/models"
	"github.com/julianstephens/taskquest/internal/storage"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "taskquest.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return &Context{Store: store}
}

func seedTask(t *testing.T, ctx *Context, task models.Task) {
	t.Helper()
	if err := ctx.Store.SaveTasks([]models.Task{task}); err != nil {
		t.Fatalf("SaveTasks() error: %v", err)
	}
}

func dailySeries(start, end string) models.Task {
	return models.Task{
		ID:               "r1",
		Title:            "Stretch",
		DueDate:          start,
		Recurring:        true,
		RecurringType:    constants.RecurringDaily,
		RecurringEndDate: end,
		Rarity:           constants.RarityCommon,
		XPReward:         50,
		CreatedAt:        time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

// assertNoProgress checks that a no-op toggle left neither a completion log
// entry nor any XP behind.
func assertNoProgress(t *testing.T, ctx *Context) {
	t.Helper()
	log, err := ctx.Store.Completions()
	if err != nil {
		t.Fatalf("Completions() error: %v", err)
	}
	if len(log) != 0 {
		t.Errorf("completion log has %d entries, want 0", len(log))
	}
	char, err := ctx.Store.Character()
	if err != nil {
		t.Fatalf("Character() error: %v", err)
	}
	if char.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0", char.TotalXP)
	}
}

func TestTaskDone_RetiredSeriesIsNoop(t *testing.T) {
	ctx := newTestContext(t)
	seedTask(t, ctx, dailySeries("2020-01-01", "2020-06-01"))

	cmd := &TaskDoneCmd{ID: "r1", Date: "2999-01-01"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertNoProgress(t, ctx)
}

func TestTaskDone_BeforeSeriesStartIsNoop(t *testing.T) {
	ctx := newTestContext(t)
	seedTask(t, ctx, dailySeries("2999-06-01", ""))

	cmd := &TaskDoneCmd{ID: "r1", Date: "2999-01-01"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertNoProgress(t, ctx)
}

func TestTaskDone_PastOccurrenceIsNoop(t *testing.T) {
	ctx := newTestContext(t)
	seedTask(t, ctx, dailySeries("2020-01-01", ""))

	cmd := &TaskDoneCmd{ID: "r1", Date: "2020-06-01"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertNoProgress(t, ctx)
}

func TestTaskDone_ActiveOccurrenceCompletes(t *testing.T) {
	ctx := newTestContext(t)
	seedTask(t, ctx, dailySeries("2020-01-01", ""))

	cmd := &TaskDoneCmd{ID: "r1"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	log, err := ctx.Store.Completions()
	if err != nil {
		t.Fatalf("Completions() error: %v", err)
	}
	if len(log) != 1 || !log[0].Completed {
		t.Fatalf("log = %+v, want one completed entry", log)
	}
	char, err := ctx.Store.Character()
	if err != nil {
		t.Fatalf("Character() error: %v", err)
	}
	if char.TotalXP != 50 {
		t.Errorf("TotalXP = %d, want 50", char.TotalXP)
	}
}
