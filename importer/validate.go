package importer

import (
	"context"
	"fmt"
	"strings"

	"bitbucket.org/mmdatafocus/lpg_backend/models"
	"gorm.io/gorm"
)

// ConsumerAddress is one unique consumer's address text under a filter.
type ConsumerAddress struct {
	ConsumerNumber string
	Address        string
}

// AddressCheck is one consumer's pass/fail result.
type AddressCheck struct {
	ConsumerNumber string
	Address        string
	Valid          bool
}

// ValidationResult is the read-only output of one address-validation run.
type ValidationResult struct {
	Route        *models.Route
	AreaNames    []string
	Checks       []AddressCheck
	TotalRows    int
	FilteredRows int
}

func (r *ValidationResult) InvalidChecks() []AddressCheck {
	var invalid []AddressCheck
	for _, check := range r.Checks {
		if !check.Valid {
			invalid = append(invalid, check)
		}
	}
	return invalid
}

// MatchPercentage is the share of unique consumers whose address contains at
// least one of the route's sub-area names.
func (r *ValidationResult) MatchPercentage() float64 {
	if len(r.Checks) == 0 {
		return 0
	}
	valid := len(r.Checks) - len(r.InvalidChecks())
	return float64(valid) / float64(len(r.Checks)) * 100
}

// CheckAddresses flags an address as invalid only when NONE of the area
// names occur inside it. Containment is case-insensitive and substring
// based: "123 jagtial road" matches area "JAGTIAL".
func CheckAddresses(consumers []ConsumerAddress, areaNames []string) []AddressCheck {
	upperAreas := make([]string, len(areaNames))
	for i, name := range areaNames {
		upperAreas[i] = strings.ToUpper(name)
	}

	checks := make([]AddressCheck, 0, len(consumers))
	for _, consumer := range consumers {
		addressUpper := strings.ToUpper(consumer.Address)
		found := false
		for _, area := range upperAreas {
			if strings.Contains(addressUpper, area) {
				found = true
				break
			}
		}
		checks = append(checks, AddressCheck{
			ConsumerNumber: consumer.ConsumerNumber,
			Address:        consumer.Address,
			Valid:          found,
		})
	}
	return checks
}

// FilterConsumerAddresses keeps rows matching the exact AreaCodeDesc value,
// deduplicated by consumer number keeping the first occurrence. Rows missing
// any of the three fields are skipped. Returns the filtered-row count before
// deduplication.
func FilterConsumerAddresses(t *Table, areaCodeDesc string) ([]ConsumerAddress, int, error) {
	if err := t.RequireColumns("ConsumerNumber", "AreaCodeDesc", "Address"); err != nil {
		return nil, 0, err
	}

	seen := make(map[string]bool)
	var consumers []ConsumerAddress
	filtered := 0
	for _, row := range t.Rows {
		consumerNumber := trimmed(row.Get("ConsumerNumber"))
		rowArea := trimmed(row.Get("AreaCodeDesc"))
		address := trimmed(row.Get("Address"))
		if consumerNumber == "" || rowArea == "" || address == "" {
			continue
		}
		if rowArea != areaCodeDesc {
			continue
		}
		filtered++
		if seen[consumerNumber] {
			continue
		}
		seen[consumerNumber] = true
		consumers = append(consumers, ConsumerAddress{ConsumerNumber: consumerNumber, Address: address})
	}
	return consumers, filtered, nil
}

// ValidateAddresses checks each unique consumer's address under the given
// AreaCodeDesc filter against the matching route's sub-area names. It never
// mutates the store.
func ValidateAddresses(ctx context.Context, db *gorm.DB, t *Table, areaCodeDesc string) (*ValidationResult, error) {
	consumers, filtered, err := FilterConsumerAddresses(t, areaCodeDesc)
	if err != nil {
		return nil, err
	}

	areaCode, description, ok := SplitAreaCodeDesc(areaCodeDesc)
	if !ok {
		return nil, fmt.Errorf("invalid AreaCodeDesc %q: expected AREA_CODE-DESCRIPTION", areaCodeDesc)
	}

	var route models.Route
	if err := db.WithContext(ctx).
		Where("area_code = ? AND area_code_description = ?", areaCode, description).
		First(&route).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("route not found for %s - %s", areaCode, description)
		}
		return nil, err
	}

	var areaNames []string
	if err := db.WithContext(ctx).Model(&models.RouteArea{}).
		Where("route_id = ?", route.ID).Order("id").
		Pluck("area_name", &areaNames).Error; err != nil {
		return nil, err
	}

	return &ValidationResult{
		Route:        &route,
		AreaNames:    areaNames,
		Checks:       CheckAddresses(consumers, areaNames),
		TotalRows:    len(t.Rows),
		FilteredRows: filtered,
	}, nil
}
