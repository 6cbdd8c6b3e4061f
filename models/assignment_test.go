package models

import (
	"context"
	"testing"

	"bitbucket.org/mmdatafocus/lpg_backend/utils"
)

func TestNewAssignmentHistory_SnapshotsBothSides(t *testing.T) {
	consumer := &Consumer{ID: 7, ConsumerNumber: "1001", ConsumerName: "Ravi Kumar"}
	route := &Route{ID: 3, AreaCode: "R001", AreaCodeDescription: "North Zone"}

	history := NewAssignmentHistory(context.Background(), consumer, route, AssignmentActionCreated)

	if history.ConsumerId == nil || *history.ConsumerId != 7 {
		t.Fatalf("expected consumer id 7, got %v", history.ConsumerId)
	}
	if history.ConsumerNumber != "1001" || history.ConsumerName != "Ravi Kumar" {
		t.Fatalf("expected consumer snapshot, got %+v", history)
	}
	if history.RouteId == nil || *history.RouteId != 3 {
		t.Fatalf("expected route id 3, got %v", history.RouteId)
	}
	if history.RouteCode != "R001" || history.RouteDescription != "North Zone" {
		t.Fatalf("expected route snapshot, got %+v", history)
	}
	if history.ActionType != AssignmentActionCreated {
		t.Fatalf("expected CREATED, got %s", history.ActionType)
	}
	if history.CorrelationId == "" {
		t.Fatal("expected a generated correlation id")
	}
}

func TestNewAssignmentHistory_UsesContextCorrelationId(t *testing.T) {
	ctx := utils.SetCorrelationIdInContext(context.Background(), "run-42")
	history := NewAssignmentHistory(ctx, nil, nil, AssignmentActionDeleted)
	if history.CorrelationId != "run-42" {
		t.Fatalf("expected correlation id from context, got %q", history.CorrelationId)
	}
	if history.ConsumerId != nil || history.RouteId != nil {
		t.Fatal("expected nil references when consumer/route absent")
	}
}
