package importer

import (
	"context"
	"strings"

	"bitbucket.org/mmdatafocus/lpg_backend/models"
	"gorm.io/gorm"
)

// RouteImportSummary counts one populate-routes run.
type RouteImportSummary struct {
	CreatedRoutes int
	FoundRoutes   int
	CreatedAreas  int
	SkippedAreas  int
}

// ImportRoutes reads an "AREA CODE"/"AREA NAME" sheet where a blank code
// means the area name belongs to the most recent route above it, and
// gets-or-creates routes and their sub-areas. Area names are unique within a
// route only.
func ImportRoutes(ctx context.Context, db *gorm.DB, t *Table) (*RouteImportSummary, error) {
	if err := t.RequireColumns("AREA CODE", "AREA NAME"); err != nil {
		return nil, err
	}

	summary := &RouteImportSummary{}
	var currentRoute *models.Route

	for _, row := range t.Rows {
		areaCode := trimmed(row.Get("AREA CODE"))
		areaName := trimmed(row.Get("AREA NAME"))

		if areaCode != "" {
			route := models.Route{AreaCode: areaCode, AreaCodeDescription: areaCode}
			result := db.WithContext(ctx).Where(models.Route{AreaCode: areaCode}).FirstOrCreate(&route)
			if result.Error != nil {
				return nil, result.Error
			}
			if result.RowsAffected > 0 {
				summary.CreatedRoutes++
			} else {
				summary.FoundRoutes++
			}
			currentRoute = &route
		}

		if areaName == "" {
			continue
		}
		// A name with no preceding valid code has nothing to attach to.
		if currentRoute == nil {
			summary.SkippedAreas++
			continue
		}

		area := models.RouteArea{RouteId: currentRoute.ID, AreaName: areaName}
		result := db.WithContext(ctx).Where(models.RouteArea{RouteId: currentRoute.ID, AreaName: areaName}).
			FirstOrCreate(&area)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected > 0 {
			summary.CreatedAreas++
		}
	}
	return summary, nil
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
