package models

import "time"

// Address and Contact belong to exactly one owner, tagged by OwnerType.
// Created once at import time; one of each per newly imported consumer.

type Address struct {
	ID          int       `gorm:"primary_key" json:"id"`
	OwnerType   OwnerType `gorm:"type:enum('CONSUMER','DELIVERY_PERSON');index:idx_addresses_owner;not null" json:"owner_type"`
	OwnerId     int       `gorm:"index:idx_addresses_owner;not null" json:"owner_id"`
	AddressText string    `gorm:"size:500" json:"address_text"`
	HouseNo     string    `gorm:"size:100" json:"house_no"`
	Street      string    `gorm:"size:200" json:"street"`
	Landmark    string    `gorm:"size:200" json:"landmark"`
	City        string    `gorm:"size:100" json:"city"`
	District    string    `gorm:"size:100" json:"district"`
	PinCode     string    `gorm:"size:10" json:"pin_code"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Contact struct {
	ID           int       `gorm:"primary_key" json:"id"`
	OwnerType    OwnerType `gorm:"type:enum('CONSUMER','DELIVERY_PERSON');index:idx_contacts_owner;not null" json:"owner_type"`
	OwnerId      int       `gorm:"index:idx_contacts_owner;not null" json:"owner_id"`
	MobileNumber string    `gorm:"size:20" json:"mobile_number"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	Email        string    `gorm:"size:100" json:"email"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
