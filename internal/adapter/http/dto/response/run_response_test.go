package response

import (
	"testing"
	"time"

	"grafica_xpto/internal/domain/entities"
)

func TestFromRun(t *testing.T) {
	started := time.Now().UTC().Add(-time.Minute)
	finished := time.Now().UTC()
	r := entities.ConversionRun{
		ID:        "run-1",
		SessionID: "sess-1",
		Results: []entities.ConversionResult{
			{GroupID: "g1", GroupName: "Group 1", Status: entities.ResultStatusSuccess, OrderID: "ord-1", OrderNumber: "ORD-20260901-000001"},
			{GroupID: "g2", GroupName: "Group 2", Status: entities.ResultStatusFailed, Error: "order service unavailable"},
		},
		Progress:   100,
		Status:     entities.RunStatusCompleted,
		StartedAt:  started,
		FinishedAt: finished,
	}

	res := FromRun(r)
	if res.ID != "run-1" || res.RunID != "run-1" || res.SessionID != "sess-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Progress != 100 || res.Status != "completed" {
		t.Fatalf("unexpected run state: %+v", res)
	}
	if res.Succeeded != 1 || res.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if len(res.Results) != 2 || res.Results[0].OrderNumber != "ORD-20260901-000001" || res.Results[1].Error == "" {
		t.Fatalf("unexpected results: %+v", res.Results)
	}
	if res.FinishedAt == nil || !res.FinishedAt.Equal(finished) {
		t.Fatalf("unexpected finished at: %+v", res.FinishedAt)
	}
	if !res.StartedAt.Equal(started) {
		t.Fatalf("unexpected started at: %+v", res.StartedAt)
	}
}

func TestFromRun_InFlight(t *testing.T) {
	r := entities.ConversionRun{
		ID:        "run-2",
		SessionID: "sess-1",
		Results:   []entities.ConversionResult{{GroupID: "g1", Status: entities.ResultStatusSuccess}},
		Progress:  50,
		Status:    entities.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	res := FromRun(r)
	if res.Status != "running" || res.Progress != 50 {
		t.Fatalf("unexpected run state: %+v", res)
	}
	if res.FinishedAt != nil {
		t.Fatalf("expected nil finished at for in-flight run, got %+v", res.FinishedAt)
	}
}
