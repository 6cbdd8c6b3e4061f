package importer

import (
	"context"
	"strings"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/models"
	"gorm.io/gorm"
)

// SplitAreaCodeDesc splits an "R001-North Zone" style value on the FIRST
// hyphen only, so "R001-North-Zone-Extra" keeps the full description. ok is
// false when the value has no hyphen at all.
func SplitAreaCodeDesc(s string) (code string, description string, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	code = strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return code, "", false
	}
	return code, strings.TrimSpace(parts[1]), true
}

// AssignSummary is the run summary printed after a route-assignment pass.
type AssignSummary struct {
	Total           int
	Created         int
	SkippedAssigned int
	SkippedMissing  int
}

// AssignmentPlan pairs each staged assignment with the consumer and route it
// snapshots into the history log.
type AssignmentPlan struct {
	Assignments []*models.ConsumerRouteAssignment
	Consumers   []*models.Consumer
	Routes      []*models.Route
}

// PlanRouteAssignments stages one assignment per resolvable consumer that
// does not already have one, either in the store or earlier in this same
// batch. Rows whose consumer or route cannot be resolved count as missing
// data. Pure function of its inputs.
func PlanRouteAssignments(t *Table, consumers map[string]*models.Consumer,
	routes map[string]*models.Route, assigned map[int]bool) (*AssignmentPlan, *AssignSummary, error) {

	if err := t.RequireColumns("ConsumerNumber", "AreaCodeDesc"); err != nil {
		return nil, nil, err
	}

	plan := &AssignmentPlan{}
	summary := &AssignSummary{Total: len(t.Rows)}
	stagedConsumers := make(map[int]bool)

	for _, row := range t.Rows {
		consumerNumber := row.Get("ConsumerNumber")
		areaCodeDesc := row.Get("AreaCodeDesc")
		if consumerNumber == "" || areaCodeDesc == "" {
			summary.SkippedMissing++
			continue
		}

		areaCode, _, _ := SplitAreaCodeDesc(areaCodeDesc)

		consumer := consumers[consumerNumber]
		route := routes[areaCode]
		if consumer == nil || route == nil {
			summary.SkippedMissing++
			continue
		}

		if assigned[consumer.ID] || stagedConsumers[consumer.ID] {
			summary.SkippedAssigned++
			continue
		}

		plan.Assignments = append(plan.Assignments, &models.ConsumerRouteAssignment{
			ConsumerId: consumer.ID,
			RouteId:    route.ID,
		})
		plan.Consumers = append(plan.Consumers, consumer)
		plan.Routes = append(plan.Routes, route)
		stagedConsumers[consumer.ID] = true
		summary.Created++
	}

	return plan, summary, nil
}

// AssignRoutes runs the route-assignment reconciler against the store: it
// pre-fetches consumers, routes and existing assignments, plans the batch,
// then bulk-creates assignments plus CREATED history rows in one
// transaction.
func AssignRoutes(ctx context.Context, db *gorm.DB, t *Table) (*AssignSummary, error) {
	consumers := make(map[string]*models.Consumer)
	var consumerRows []*models.Consumer
	if err := db.WithContext(ctx).Find(&consumerRows).Error; err != nil {
		return nil, err
	}
	for _, c := range consumerRows {
		consumers[c.ConsumerNumber] = c
	}

	routes := make(map[string]*models.Route)
	var routeRows []*models.Route
	if err := db.WithContext(ctx).Find(&routeRows).Error; err != nil {
		return nil, err
	}
	for _, r := range routeRows {
		routes[r.AreaCode] = r
	}

	assigned := make(map[int]bool)
	var assignedIds []int
	if err := db.WithContext(ctx).Model(&models.ConsumerRouteAssignment{}).
		Pluck("consumer_id", &assignedIds).Error; err != nil {
		return nil, err
	}
	for _, id := range assignedIds {
		assigned[id] = true
	}

	plan, summary, err := PlanRouteAssignments(t, consumers, routes, assigned)
	if err != nil {
		return nil, err
	}
	if len(plan.Assignments) == 0 {
		return summary, nil
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(plan.Assignments, config.BulkBatchSize).Error; err != nil {
			return err
		}
		histories := make([]*models.ConsumerRouteAssignmentHistory, 0, len(plan.Assignments))
		for i := range plan.Assignments {
			history := models.NewAssignmentHistory(ctx, plan.Consumers[i], plan.Routes[i], models.AssignmentActionCreated)
			histories = append(histories, &history)
		}
		return tx.CreateInBatches(histories, config.BulkBatchSize).Error
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
