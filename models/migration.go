package models

import (
	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/utils"
)

// MigrateTable Migrate Table to Database
func MigrateTable() {
	db := config.GetDB()
	err := db.AutoMigrate(
		&ConsumerCategory{},
		&ConsumerType{},
		&ConnectionType{},
		&BPLType{},
		&DCTType{},
		&Scheme{},
		&MarketType{},
		&DeliveryPerson{},
		&Product{},
		&Unit{},
		&ProductVariant{},
		&Consumer{},
		&Address{},
		&Contact{},
		&ConnectionDetail{},
		&Route{},
		&RouteArea{},
		&ConsumerRouteAssignment{},
		&ConsumerRouteAssignmentHistory{},
		&User{},
	)
	utils.ErrorPanic(err)
}
