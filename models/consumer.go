package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"gorm.io/gorm"
)

type Consumer struct {
	ID             int          `gorm:"primary_key" json:"id"`
	ConsumerNumber string       `gorm:"size:50;uniqueIndex;not null" json:"consumer_number" binding:"required"`
	ConsumerName   string       `gorm:"size:200;index;not null" json:"consumer_name" binding:"required"`
	FatherName     string       `gorm:"size:200" json:"father_name"`
	MotherName     string       `gorm:"size:200" json:"mother_name"`
	SpouseName     string       `gorm:"size:200" json:"spouse_name"`
	RationCardNum  *string      `gorm:"size:50" json:"ration_card_num"`
	BlueBook       *uint        `json:"blue_book"`
	LpgId          *int64       `gorm:"uniqueIndex" json:"lpg_id"`
	IsKycDone      bool         `gorm:"index;not null;default:false" json:"is_kyc_done"`
	CategoryId     int          `gorm:"index:idx_consumers_category_type;not null" json:"category_id" binding:"required"`
	ConsumerTypeId int          `gorm:"index:idx_consumers_category_type;not null" json:"consumer_type_id" binding:"required"`
	BplTypeId      *int         `json:"bpl_type_id"`
	DctTypeId      *int         `json:"dct_type_id"`
	SchemeId       *int         `gorm:"index" json:"scheme_id"`
	OptingStatus   OptingStatus `gorm:"type:enum('OPT_IN','OPT_OUT','PENDING');default:'PENDING';index" json:"opting_status"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewConsumer struct {
	ConsumerNumber string       `json:"consumer_number" binding:"required"`
	ConsumerName   string       `json:"consumer_name" binding:"required"`
	FatherName     string       `json:"father_name"`
	MotherName     string       `json:"mother_name"`
	SpouseName     string       `json:"spouse_name"`
	RationCardNum  *string      `json:"ration_card_num"`
	BlueBook       *uint        `json:"blue_book"`
	LpgId          *int64       `json:"lpg_id"`
	IsKycDone      bool         `json:"is_kyc_done"`
	CategoryId     int          `json:"category_id" binding:"required"`
	ConsumerTypeId int          `json:"consumer_type_id" binding:"required"`
	BplTypeId      *int         `json:"bpl_type_id"`
	DctTypeId      *int         `json:"dct_type_id"`
	SchemeId       *int         `json:"scheme_id"`
	OptingStatus   OptingStatus `json:"opting_status"`
	MobileNumber   string       `json:"mobile_number"`
	AddressText    string       `json:"address_text"`
}

func (input *NewConsumer) validate(ctx context.Context, id int) error {
	db := config.GetDB()

	var count int64
	if err := db.WithContext(ctx).Model(&Consumer{}).
		Where("consumer_number = ? AND id <> ?", input.ConsumerNumber, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("consumer number already exists")
	}

	if err := db.WithContext(ctx).Model(&ConsumerCategory{}).
		Where("id = ?", input.CategoryId).Count(&count).Error; err != nil {
		return err
	}
	if count <= 0 {
		return errors.New("consumer category not found")
	}

	if err := db.WithContext(ctx).Model(&ConsumerType{}).
		Where("id = ?", input.ConsumerTypeId).Count(&count).Error; err != nil {
		return err
	}
	if count <= 0 {
		return errors.New("consumer type not found")
	}
	return nil
}

func CreateConsumer(ctx context.Context, input *NewConsumer) (*Consumer, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	optingStatus := input.OptingStatus
	if optingStatus == "" {
		optingStatus = OptingStatusPending
	}

	consumer := Consumer{
		ConsumerNumber: input.ConsumerNumber,
		ConsumerName:   input.ConsumerName,
		FatherName:     input.FatherName,
		MotherName:     input.MotherName,
		SpouseName:     input.SpouseName,
		RationCardNum:  input.RationCardNum,
		BlueBook:       input.BlueBook,
		LpgId:          input.LpgId,
		IsKycDone:      input.IsKycDone,
		CategoryId:     input.CategoryId,
		ConsumerTypeId: input.ConsumerTypeId,
		BplTypeId:      input.BplTypeId,
		DctTypeId:      input.DctTypeId,
		SchemeId:       input.SchemeId,
		OptingStatus:   optingStatus,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&consumer).Error; err != nil {
			return err
		}
		if input.AddressText != "" {
			address := Address{OwnerType: OwnerTypeConsumer, OwnerId: consumer.ID, AddressText: input.AddressText}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
		}
		if input.MobileNumber != "" {
			contact := Contact{OwnerType: OwnerTypeConsumer, OwnerId: consumer.ID, MobileNumber: input.MobileNumber}
			if err := tx.Create(&contact).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &consumer, nil
}

func UpdateConsumer(ctx context.Context, id int, input *NewConsumer) (*Consumer, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	consumer, err := GetConsumer(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(consumer).Updates(map[string]interface{}{
		"ConsumerNumber": input.ConsumerNumber,
		"ConsumerName":   input.ConsumerName,
		"FatherName":     input.FatherName,
		"MotherName":     input.MotherName,
		"SpouseName":     input.SpouseName,
		"RationCardNum":  input.RationCardNum,
		"BlueBook":       input.BlueBook,
		"LpgId":          input.LpgId,
		"IsKycDone":      input.IsKycDone,
		"CategoryId":     input.CategoryId,
		"ConsumerTypeId": input.ConsumerTypeId,
		"BplTypeId":      input.BplTypeId,
		"DctTypeId":      input.DctTypeId,
		"SchemeId":       input.SchemeId,
	}).Error
	if err != nil {
		return nil, err
	}
	return consumer, nil
}

func GetConsumer(ctx context.Context, id int) (*Consumer, error) {
	var consumer Consumer
	db := config.GetDB()
	if err := db.WithContext(ctx).First(&consumer, id).Error; err != nil {
		return nil, err
	}
	return &consumer, nil
}

func GetConsumerByNumber(ctx context.Context, consumerNumber string) (*Consumer, error) {
	var consumer Consumer
	db := config.GetDB()
	if err := db.WithContext(ctx).Where("consumer_number = ?", consumerNumber).First(&consumer).Error; err != nil {
		return nil, err
	}
	return &consumer, nil
}

func ListConsumers(ctx context.Context, name string, limit int, offset int) ([]*Consumer, error) {
	var consumers []*Consumer
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Consumer{})
	if name != "" {
		dbCtx = dbCtx.Where("consumer_name LIKE ?", "%"+name+"%")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if err := dbCtx.Order("id").Limit(limit).Offset(offset).Find(&consumers).Error; err != nil {
		return nil, err
	}
	return consumers, nil
}
