package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsumerRouteAssignment keeps at most one active route per consumer.
type ConsumerRouteAssignment struct {
	ConsumerId int       `gorm:"primary_key" json:"consumer_id" binding:"required"`
	RouteId    int       `gorm:"index;not null" json:"route_id" binding:"required"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ConsumerRouteAssignmentHistory is an append-only log of assignment changes.
// Consumer/route references are nullable so history survives deletions; the
// denormalized snapshots keep the row readable after that.
type ConsumerRouteAssignmentHistory struct {
	ID               int              `gorm:"primary_key" json:"id"`
	ConsumerId       *int             `gorm:"index:idx_assignment_history_consumer" json:"consumer_id"`
	ConsumerNumber   string           `gorm:"size:50" json:"consumer_number"`
	ConsumerName     string           `gorm:"size:200" json:"consumer_name"`
	RouteId          *int             `gorm:"index:idx_assignment_history_route" json:"route_id"`
	RouteCode        string           `gorm:"size:50" json:"route_code"`
	RouteDescription string           `gorm:"size:150" json:"route_description"`
	ActionType       AssignmentAction `gorm:"type:enum('CREATED','UPDATED','DELETED');not null" json:"action_type"`
	CorrelationId    string           `gorm:"size:36" json:"correlation_id"`
	Timestamp        time.Time        `gorm:"autoCreateTime;index:idx_assignment_history_consumer;index:idx_assignment_history_route" json:"timestamp"`
}

func correlationIdFromContextOrNew(ctx context.Context) string {
	if ctx != nil {
		if v, ok := utils.GetCorrelationIdFromContext(ctx); ok && v != "" {
			return v
		}
	}
	return uuid.NewString()
}

// NewAssignmentHistory builds a history row snapshot for the given action.
func NewAssignmentHistory(ctx context.Context, consumer *Consumer, route *Route, action AssignmentAction) ConsumerRouteAssignmentHistory {
	history := ConsumerRouteAssignmentHistory{
		ActionType:    action,
		CorrelationId: correlationIdFromContextOrNew(ctx),
	}
	if consumer != nil {
		history.ConsumerId = &consumer.ID
		history.ConsumerNumber = consumer.ConsumerNumber
		history.ConsumerName = consumer.ConsumerName
	}
	if route != nil {
		history.RouteId = &route.ID
		history.RouteCode = route.AreaCode
		history.RouteDescription = route.AreaCodeDescription
	}
	return history
}

type NewAssignment struct {
	ConsumerId int `json:"consumer_id" binding:"required"`
	RouteId    int `json:"route_id" binding:"required"`
}

func AssignConsumerRoute(ctx context.Context, input *NewAssignment) (*ConsumerRouteAssignment, error) {
	db := config.GetDB()

	consumer, err := GetConsumer(ctx, input.ConsumerId)
	if err != nil {
		return nil, errors.New("consumer not found")
	}
	var route Route
	if err := db.WithContext(ctx).First(&route, input.RouteId).Error; err != nil {
		return nil, errors.New("route not found")
	}

	var count int64
	if err := db.WithContext(ctx).Model(&ConsumerRouteAssignment{}).
		Where("consumer_id = ?", input.ConsumerId).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("consumer already has a route assignment")
	}

	assignment := ConsumerRouteAssignment{
		ConsumerId: input.ConsumerId,
		RouteId:    input.RouteId,
	}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		history := NewAssignmentHistory(ctx, consumer, &route, AssignmentActionCreated)
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func RemoveConsumerRoute(ctx context.Context, consumerId int) error {
	db := config.GetDB()

	var assignment ConsumerRouteAssignment
	if err := db.WithContext(ctx).Where("consumer_id = ?", consumerId).
		First(&assignment).Error; err != nil {
		return err
	}

	consumer, err := GetConsumer(ctx, consumerId)
	if err != nil {
		return err
	}
	var route Route
	if err := db.WithContext(ctx).First(&route, assignment.RouteId).Error; err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ConsumerRouteAssignment{}, "consumer_id = ?", consumerId).Error; err != nil {
			return err
		}
		history := NewAssignmentHistory(ctx, consumer, &route, AssignmentActionDeleted)
		return tx.Create(&history).Error
	})
}
