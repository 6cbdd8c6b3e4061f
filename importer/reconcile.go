package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/lpg_backend/models"
	"github.com/shopspring/decimal"
)

// svDateLayout matches the legacy export's "Jan 2, 2006" service dates.
const svDateLayout = "Jan 2, 2006"

// domesticTypeName is the exact consumer-type display name that makes a
// lazily created variant DOMESTIC; every other type yields COMMERCIAL.
const domesticTypeName = "Domestic"

// LookupMissingError means a row references a registry value that was never
// resolved. It aborts the whole reconciliation pass: it indicates the lookup
// population step was not run, not a bad row.
type LookupMissingError struct {
	Registry string
	Value    string
}

func (e *LookupMissingError) Error() string {
	return fmt.Sprintf("%s %q not found; run populate-lookups first", e.Registry, e.Value)
}

// ExistingKeys are the natural keys already present in the target store.
type ExistingKeys struct {
	ConsumerNumbers map[string]bool
	SvNumbers       map[string]bool
	VariantCodes    map[string]bool
}

// Batches are the in-memory candidate rows staged by one reconciliation pass.
// Consumer and variant ids are unknown until the writer commits, so child
// rows carry the natural keys they must be linked through.
type Batches struct {
	Consumers   []*models.Consumer
	Addresses   []*models.Address
	Contacts    []*models.Contact
	Variants    []*models.ProductVariant
	Connections []*models.ConnectionDetail

	// Natural keys for post-write linking, parallel to the slices above.
	AddressConsumerNumbers    []string
	ContactConsumerNumbers    []string
	ConnectionConsumerNumbers []string

	// ConnectionProductCodes maps sv_number to the ProdCode its connection
	// must be patched with after variants are written.
	ConnectionProductCodes map[string]string
}

// ReconcileSummary counts what one pass staged and skipped.
type ReconcileSummary struct {
	RowsSeen           int
	NewConsumers       int
	NewVariants        int
	NewConnections     int
	SkippedConsumers   int
	SkippedConnections int
	SkippedBlankRows   int
}

// Reconcile maps rows to candidate batches against the given store state and
// registries. It is a pure function of its inputs: it never touches the
// store. Dedup policy: the first-seen row per consumer number builds the
// consumer; the first-seen row per sv number builds the connection, guarding
// against duplicates both in the store and within this batch.
func Reconcile(t *Table, existing *ExistingKeys, reg *Registries) (*Batches, *ReconcileSummary, error) {
	if err := t.RequireColumns("ConsumerNumber", "ConsumerName", "Category",
		"ConsumerTypeIdDesc", "SvNumber", "ProdCode"); err != nil {
		return nil, nil, err
	}

	batches := &Batches{ConnectionProductCodes: make(map[string]string)}
	summary := &ReconcileSummary{RowsSeen: len(t.Rows)}

	newConsumerNumbers := make(map[string]bool)
	consumerSeen := make(map[string]bool)

	// Pass 1: consumers, one candidate per first-seen consumer number, with
	// one address and contact each.
	for _, row := range t.Rows {
		number := row.Get("ConsumerNumber")
		if number == "" {
			summary.SkippedBlankRows++
			continue
		}
		if consumerSeen[number] {
			continue
		}
		consumerSeen[number] = true

		if existing.ConsumerNumbers[number] {
			summary.SkippedConsumers++
			continue
		}

		categoryId, err := requireLookup(reg.Categories, "ConsumerCategory", row.Get("Category"))
		if err != nil {
			return nil, nil, err
		}
		consumerTypeId, err := requireLookup(reg.ConsumerTypes, "ConsumerType", row.Get("ConsumerTypeIdDesc"))
		if err != nil {
			return nil, nil, err
		}

		consumer := &models.Consumer{
			ConsumerNumber: number,
			ConsumerName:   row.Get("ConsumerName"),
			FatherName:     row.Get("FatherName"),
			MotherName:     row.Get("MotherName"),
			RationCardNum:  optionalString(row.Get("Rationcardno")),
			BlueBook:       parseBlueBook(row.Get("BlueBookNumber")),
			LpgId:          parseLpgId(row.Get("LPGId")),
			IsKycDone:      row.Get("KYCDone") == "KYC Done",
			CategoryId:     categoryId,
			ConsumerTypeId: consumerTypeId,
			OptingStatus:   models.OptingStatusPending,
		}
		batches.Consumers = append(batches.Consumers, consumer)
		newConsumerNumbers[number] = true
		summary.NewConsumers++

		batches.Addresses = append(batches.Addresses, &models.Address{
			OwnerType:   models.OwnerTypeConsumer,
			AddressText: row.Get("Address"),
			HouseNo:     row.Get("HouseNo"),
		})
		batches.AddressConsumerNumbers = append(batches.AddressConsumerNumbers, number)

		batches.Contacts = append(batches.Contacts, &models.Contact{
			OwnerType:    models.OwnerTypeConsumer,
			MobileNumber: row.Get("MobileNumber"),
		})
		batches.ContactConsumerNumbers = append(batches.ContactConsumerNumbers, number)
	}

	// Pass 2: variants and connections over every row.
	variantStaged := make(map[string]bool)
	svStaged := make(map[string]bool)

	for _, row := range t.Rows {
		number := row.Get("ConsumerNumber")
		if number == "" {
			continue
		}

		prodCode := row.Get("ProdCode")
		if prodCode != "" && !existing.VariantCodes[prodCode] && !variantStaged[prodCode] {
			variant, err := buildVariant(row, prodCode, reg)
			if err != nil {
				return nil, nil, err
			}
			batches.Variants = append(batches.Variants, variant)
			variantStaged[prodCode] = true
			summary.NewVariants++
		}

		svNumber := row.Get("SvNumber")
		if svNumber == "" {
			continue
		}
		if existing.SvNumbers[svNumber] || svStaged[svNumber] {
			summary.SkippedConnections++
			continue
		}

		connectionTypeId := 0
		if name := row.Get("InDocTypeIdDesc"); name != "" {
			id, err := requireLookup(reg.ConnectionTypes, "ConnectionType", name)
			if err != nil {
				return nil, nil, err
			}
			connectionTypeId = id
		}

		batches.Connections = append(batches.Connections, &models.ConnectionDetail{
			SvNumber:            svNumber,
			SvDate:              parseSvDate(row.Get("SvDateInt")),
			ConnectionTypeId:    connectionTypeId,
			HistCodeDescription: row.Get("HistCodeDescription"),
			NumOfRegulators:     parseRegulators(row.Get("NoOfDpr")),
		})
		batches.ConnectionConsumerNumbers = append(batches.ConnectionConsumerNumbers, number)
		if prodCode != "" {
			batches.ConnectionProductCodes[svNumber] = prodCode
		}
		svStaged[svNumber] = true
		summary.NewConnections++
	}

	return batches, summary, nil
}

func buildVariant(row Record, prodCode string, reg *Registries) (*models.ProductVariant, error) {
	size, _ := strconv.ParseFloat(row.Get("NoOfCylinder"), 64)

	variantType := models.VariantTypeCommercial
	if row.Get("ConsumerTypeIdDesc") == domesticTypeName {
		variantType = models.VariantTypeDomestic
	}

	productId, err := requireLookup(reg.Products, "Product", "LPG Cylinder")
	if err != nil {
		return nil, err
	}
	unitId, err := requireLookup(reg.Units, "Unit", "kg")
	if err != nil {
		return nil, err
	}

	return &models.ProductVariant{
		ProductCode: prodCode,
		Name:        VariantName(variantType, size),
		ProductId:   productId,
		UnitId:      unitId,
		Size:        decimal.NewFromFloat(size),
		VariantType: variantType,
	}, nil
}

// VariantName templates the display name from the variant type and the
// cylinder size, e.g. "Domestic Cylinder 14.2kg".
func VariantName(variantType models.VariantType, size float64) string {
	label := strings.ToUpper(string(variantType)[:1]) + strings.ToLower(string(variantType)[1:])
	return fmt.Sprintf("%s Cylinder %skg", label, strconv.FormatFloat(size, 'f', -1, 64))
}

func requireLookup(registry map[string]int, name string, value string) (int, error) {
	id, ok := registry[value]
	if !ok {
		return 0, &LookupMissingError{Registry: name, Value: value}
	}
	return id, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseBlueBook accepts only a pure non-negative integer string. Anything
// else ("12.5", "abc", "-3") becomes absent instead of raising.
func parseBlueBook(s string) *uint {
	if s == "" {
		return nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(n)
	return &v
}

// parseLpgId accepts a float-like numeric string (digits with at most one
// decimal point) and truncates it to an integer. Malformed values become
// absent.
func parseLpgId(s string) *int64 {
	if s == "" {
		return nil
	}
	stripped := strings.Replace(s, ".", "", 1)
	if stripped == "" {
		return nil
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	v := int64(f)
	return &v
}

// IsValidBlueBook reports whether the raw value would survive a real import.
func IsValidBlueBook(s string) bool {
	return parseBlueBook(s) != nil
}

// IsValidLpgId reports whether the raw value would survive a real import.
func IsValidLpgId(s string) bool {
	return parseLpgId(s) != nil
}

func parseSvDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(svDateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

func parseRegulators(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
