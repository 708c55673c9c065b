package history_mem_repo

import (
	"context"
	"slot_engine/internal/model"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRepo_NewestFirstAndTrimmed(t *testing.T) {
	ctx := context.Background()
	r := NewSpinHistoryRepository(3)
	start := time.Now()

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		err := r.Save(ctx, model.SpinRecord{ID: ids[i], UserID: "u1", CreatedAt: start.Add(time.Duration(i) * time.Second)})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := r.ListByUser(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != ids[4] || got[1].ID != ids[3] || got[2].ID != ids[2] {
		t.Fatalf("unexpected order")
	}

	limited, _ := r.ListByUser(ctx, "u1", 1)
	if len(limited) != 1 || limited[0].ID != ids[4] {
		t.Fatalf("limit not applied")
	}

	if other, _ := r.ListByUser(ctx, "u2", 10); len(other) != 0 {
		t.Fatalf("history leaked between players")
	}
	if none, _ := r.ListByUser(ctx, "u1", 0); len(none) != 0 {
		t.Fatalf("zero limit returned records")
	}
}
