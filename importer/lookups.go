package importer

import (
	"context"
	"fmt"

	"bitbucket.org/mmdatafocus/lpg_backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LookupColumns maps each registry to the CSV column it is fed from.
var LookupColumns = map[string]string{
	"MarketType":       "TypeOfMarket",
	"ConnectionType":   "InDocTypeIdDesc",
	"ConsumerType":     "ConsumerTypeIdDesc",
	"ConsumerCategory": "Category",
	"BPLType":          "BPLType",
	"DCTType":          "DCTType",
	"Scheme":           "Scheme",
}

func essentialProducts() []models.Product {
	return []models.Product{
		{Name: "LPG Cylinder", Description: "Liquefied Petroleum Gas cylinders"},
		{Name: "Appliance", Description: "Gas appliances and accessories"},
		{Name: "Regulator", Description: "Gas pressure regulators"},
		{Name: "Gas Hose", Description: "Gas connection hoses"},
	}
}

func essentialUnits() []models.Unit {
	return []models.Unit{
		{ShortName: "kg", Description: "Kilogram"},
		{ShortName: "pcs", Description: "Pieces"},
		{ShortName: "mtr", Description: "Meter"},
		{ShortName: "ltr", Description: "Liter"},
	}
}

// SeedProducts ensures the essential products and units exist. Every other
// step (lookup population, reconciliation, variant seeding) assumes they do.
// Idempotent.
func SeedProducts(ctx context.Context, db *gorm.DB) error {
	for _, p := range essentialProducts() {
		product := p
		if err := db.WithContext(ctx).Where(models.Product{Name: p.Name}).
			FirstOrCreate(&product).Error; err != nil {
			return err
		}
	}
	for _, u := range essentialUnits() {
		unit := u
		if err := db.WithContext(ctx).Where(models.Unit{ShortName: u.ShortName}).
			FirstOrCreate(&unit).Error; err != nil {
			return err
		}
	}
	return nil
}

type standardVariant struct {
	Code    string
	Name    string
	Product string
	Unit    string
	Size    float64
	Type    models.VariantType
}

// standardVariants is the fixed catalogue of cylinder, regulator and hose
// variants every distributor carries, keyed by product code.
func standardVariants() []standardVariant {
	return []standardVariant{
		{"LPG-DOM-14.2", "Domestic LPG Cylinder 14.2 kg", "LPG Cylinder", "kg", 14.2, models.VariantTypeDomestic},
		{"LPG-DOM-5", "Domestic LPG Cylinder 5 kg", "LPG Cylinder", "kg", 5, models.VariantTypeDomestic},
		{"LPG-COM-19", "Commercial LPG Cylinder 19 kg", "LPG Cylinder", "kg", 19, models.VariantTypeCommercial},
		{"LPG-COM-35", "Commercial LPG Cylinder 35 kg", "LPG Cylinder", "kg", 35, models.VariantTypeCommercial},
		{"LPG-IND-47.5", "Industrial LPG Cylinder 47.5 kg", "LPG Cylinder", "kg", 47.5, models.VariantTypeIndustrial},
		{"REG-DOM-STD", "Standard Domestic Regulator", "Regulator", "pcs", 1, models.VariantTypeDomestic},
		{"REG-COM-HP", "High Pressure Commercial Regulator", "Regulator", "pcs", 1, models.VariantTypeCommercial},
		{"HOSE-DOM-1M", "Domestic Gas Hose 1 meter", "Gas Hose", "mtr", 1, models.VariantTypeDomestic},
		{"HOSE-DOM-2M", "Domestic Gas Hose 2 meter", "Gas Hose", "mtr", 2, models.VariantTypeDomestic},
		{"HOSE-COM-3M", "Commercial Gas Hose 3 meter", "Gas Hose", "mtr", 3, models.VariantTypeCommercial},
	}
}

// SeedStandardVariants gets-or-creates the standard variant catalogue, keyed
// on product_code. Run SeedProducts first; resolution happens against the
// live registries. Idempotent.
func SeedStandardVariants(ctx context.Context, db *gorm.DB) (created int, found int, err error) {
	reg, err := LoadRegistries(ctx, db)
	if err != nil {
		return 0, 0, err
	}

	for _, sv := range standardVariants() {
		productId, err := requireLookup(reg.Products, "Product", sv.Product)
		if err != nil {
			return created, found, err
		}
		unitId, err := requireLookup(reg.Units, "Unit", sv.Unit)
		if err != nil {
			return created, found, err
		}

		variant := models.ProductVariant{
			ProductCode: sv.Code,
			Name:        sv.Name,
			ProductId:   productId,
			UnitId:      unitId,
			Size:        decimal.NewFromFloat(sv.Size),
			VariantType: sv.Type,
		}
		result := db.WithContext(ctx).Where(models.ProductVariant{ProductCode: sv.Code}).
			FirstOrCreate(&variant)
		if result.Error != nil {
			return created, found, result.Error
		}
		if result.RowsAffected > 0 {
			created++
		} else {
			found++
		}
	}
	return created, found, nil
}

// LookupCounts reports per-registry created/found totals for the run summary.
type LookupCounts struct {
	Created map[string]int
	Found   map[string]int
}

// PopulateLookups gets-or-creates one registry row per distinct non-empty
// value of each lookup column present in the table. Blank values are ignored.
// Running twice produces no duplicate rows.
func PopulateLookups(ctx context.Context, db *gorm.DB, t *Table) (*LookupCounts, error) {
	counts := &LookupCounts{
		Created: make(map[string]int),
		Found:   make(map[string]int),
	}

	for registry, column := range LookupColumns {
		values := DistinctColumnValues(t, column)
		for _, name := range values {
			created, err := getOrCreateLookup(ctx, db, registry, name)
			if err != nil {
				return nil, fmt.Errorf("populate %s %q: %w", registry, name, err)
			}
			if created {
				counts.Created[registry]++
			} else {
				counts.Found[registry]++
			}
		}
	}
	return counts, nil
}

func getOrCreateLookup(ctx context.Context, db *gorm.DB, registry string, name string) (bool, error) {
	dbCtx := db.WithContext(ctx)
	switch registry {
	case "MarketType":
		row := models.MarketType{Name: name}
		result := dbCtx.Where(models.MarketType{Name: name}).FirstOrCreate(&row)
		return result.RowsAffected > 0, result.Error
	case "ConnectionType":
		row := models.ConnectionType{Name: name}
		result := dbCtx.Where(models.ConnectionType{Name: name}).FirstOrCreate(&row)
		return result.RowsAffected > 0, result.Error
	case "ConsumerType":
		row := models.ConsumerType{Name: name}
		result := dbCtx.Where(models.ConsumerType{Name: name}).FirstOrCreate(&row)
		return result.RowsAffected > 0, result.Error
	case "ConsumerCategory":
		row := models.ConsumerCategory{Name: name}
		result := dbCtx.Where(models.ConsumerCategory{Name: name}).FirstOrCreate(&row)
		return result.RowsAffected > 0, result.Error
	case "BPLType":
		row := models.BPLType{Name: name}
		result := dbCtx.Where(models.BPLType{Name: name}).FirstOrCreate(&row)
		return result.RowsAffected > 0, result.Error
	case "DCTType":
		row := models.DCTType{Name: name}
		result := dbCtx.Where(models.DCTType{Name: name}).FirstOrCreate(&row)
		return result.RowsAffected > 0, result.Error
	case "Scheme":
		row := models.Scheme{Name: name}
		result := dbCtx.Where(models.Scheme{Name: name}).FirstOrCreate(&row)
		return result.RowsAffected > 0, result.Error
	}
	return false, fmt.Errorf("unknown registry %q", registry)
}

// DistinctColumnValues returns the distinct non-empty values of a column in
// first-seen order. A missing column yields nothing.
func DistinctColumnValues(t *Table, column string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range t.Rows {
		v := row.Get(column)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// Registries are the name-to-id maps the reconciler resolves against. The
// reconciler never creates registry rows itself; run PopulateLookups first.
type Registries struct {
	Categories      map[string]int
	ConsumerTypes   map[string]int
	ConnectionTypes map[string]int
	Products        map[string]int
	Units           map[string]int
}

// LoadRegistries pre-fetches all registry rows into memory.
func LoadRegistries(ctx context.Context, db *gorm.DB) (*Registries, error) {
	reg := &Registries{
		Categories:      make(map[string]int),
		ConsumerTypes:   make(map[string]int),
		ConnectionTypes: make(map[string]int),
		Products:        make(map[string]int),
		Units:           make(map[string]int),
	}

	var categories []models.ConsumerCategory
	if err := db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	for _, c := range categories {
		reg.Categories[c.Name] = c.ID
	}

	var consumerTypes []models.ConsumerType
	if err := db.WithContext(ctx).Find(&consumerTypes).Error; err != nil {
		return nil, err
	}
	for _, ct := range consumerTypes {
		reg.ConsumerTypes[ct.Name] = ct.ID
	}

	var connectionTypes []models.ConnectionType
	if err := db.WithContext(ctx).Find(&connectionTypes).Error; err != nil {
		return nil, err
	}
	for _, ct := range connectionTypes {
		reg.ConnectionTypes[ct.Name] = ct.ID
	}

	var products []models.Product
	if err := db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		reg.Products[p.Name] = p.ID
	}

	var units []models.Unit
	if err := db.WithContext(ctx).Find(&units).Error; err != nil {
		return nil, err
	}
	for _, u := range units {
		reg.Units[u.ShortName] = u.ID
	}

	return reg, nil
}

// LoadExistingKeys pre-fetches the natural-key sets already present in the
// store.
func LoadExistingKeys(ctx context.Context, db *gorm.DB) (*ExistingKeys, error) {
	keys := &ExistingKeys{
		ConsumerNumbers: make(map[string]bool),
		SvNumbers:       make(map[string]bool),
		VariantCodes:    make(map[string]bool),
	}

	var consumerNumbers []string
	if err := db.WithContext(ctx).Model(&models.Consumer{}).
		Pluck("consumer_number", &consumerNumbers).Error; err != nil {
		return nil, err
	}
	for _, n := range consumerNumbers {
		keys.ConsumerNumbers[n] = true
	}

	var svNumbers []string
	if err := db.WithContext(ctx).Model(&models.ConnectionDetail{}).
		Pluck("sv_number", &svNumbers).Error; err != nil {
		return nil, err
	}
	for _, n := range svNumbers {
		keys.SvNumbers[n] = true
	}

	var variantCodes []string
	if err := db.WithContext(ctx).Model(&models.ProductVariant{}).
		Pluck("product_code", &variantCodes).Error; err != nil {
		return nil, err
	}
	for _, c := range variantCodes {
		keys.VariantCodes[c] = true
	}

	return keys, nil
}
