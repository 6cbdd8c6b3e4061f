package models

type OptingStatus string

const (
	OptingStatusOptIn   OptingStatus = "OPT_IN"
	OptingStatusOptOut  OptingStatus = "OPT_OUT"
	OptingStatusPending OptingStatus = "PENDING"
)

type VariantType string

const (
	VariantTypeDomestic   VariantType = "DOMESTIC"
	VariantTypeCommercial VariantType = "COMMERCIAL"
	VariantTypeIndustrial VariantType = "INDUSTRIAL"
)

// OwnerType tags the owning entity of an Address or Contact row.
// A tagged-variant foreign key instead of a runtime content-type table.
type OwnerType string

const (
	OwnerTypeConsumer       OwnerType = "CONSUMER"
	OwnerTypeDeliveryPerson OwnerType = "DELIVERY_PERSON"
)

type AssignmentAction string

const (
	AssignmentActionCreated AssignmentAction = "CREATED"
	AssignmentActionUpdated AssignmentAction = "UPDATED"
	AssignmentActionDeleted AssignmentAction = "DELETED"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "A"
	UserRoleStaff UserRole = "S"
)
