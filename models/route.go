package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
)

type Route struct {
	ID                  int       `gorm:"primary_key" json:"id"`
	AreaCode            string    `gorm:"size:50;uniqueIndex;not null" json:"area_code" binding:"required"`
	AreaCodeDescription string    `gorm:"size:150;not null" json:"area_code_description"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RouteArea is a named sub-area of a Route. Area names may repeat across
// routes but are unique within one.
type RouteArea struct {
	ID        int       `gorm:"primary_key" json:"id"`
	RouteId   int       `gorm:"uniqueIndex:idx_route_areas_route_name;not null" json:"route_id" binding:"required"`
	AreaName  string    `gorm:"size:150;uniqueIndex:idx_route_areas_route_name;not null" json:"area_name" binding:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewRoute struct {
	AreaCode            string   `json:"area_code" binding:"required"`
	AreaCodeDescription string   `json:"area_code_description"`
	AreaNames           []string `json:"area_names"`
}

func CreateRoute(ctx context.Context, input *NewRoute) (*Route, error) {
	db := config.GetDB()

	var count int64
	if err := db.WithContext(ctx).Model(&Route{}).
		Where("area_code = ?", input.AreaCode).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("area code already exists")
	}

	description := input.AreaCodeDescription
	if description == "" {
		description = input.AreaCode
	}

	route := Route{
		AreaCode:            input.AreaCode,
		AreaCodeDescription: description,
	}
	if err := db.WithContext(ctx).Create(&route).Error; err != nil {
		return nil, err
	}

	for _, name := range input.AreaNames {
		if name == "" {
			continue
		}
		area := RouteArea{RouteId: route.ID, AreaName: name}
		if err := db.WithContext(ctx).Where(&RouteArea{RouteId: route.ID, AreaName: name}).
			FirstOrCreate(&area).Error; err != nil {
			return nil, err
		}
	}
	return &route, nil
}

func GetRouteByCode(ctx context.Context, areaCode string) (*Route, error) {
	var route Route
	db := config.GetDB()
	if err := db.WithContext(ctx).Where("area_code = ?", areaCode).First(&route).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func ListRoutes(ctx context.Context) ([]*Route, error) {
	var routes []*Route
	db := config.GetDB()
	if err := db.WithContext(ctx).Order("area_code").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// ListRouteAreaNames returns the route's sub-area names in insertion order.
func ListRouteAreaNames(ctx context.Context, routeId int) ([]string, error) {
	var names []string
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&RouteArea{}).
		Where("route_id = ?", routeId).Order("id").
		Pluck("area_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
