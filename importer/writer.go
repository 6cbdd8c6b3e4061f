package importer

import (
	"context"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/models"
	"gorm.io/gorm"
)

// CommitSummary counts what one commit actually wrote.
type CommitSummary struct {
	ConsumersCreated   int
	AddressesCreated   int
	ContactsCreated    int
	VariantsCreated    int
	ConnectionsCreated int
	ConnectionsDropped int
}

// CommitBatches persists staged batches in one transaction: consumers first,
// then their addresses and contacts, then variants, then connections with
// the freshly generated variant ids patched in. Insertion happens in chunks
// of config.BulkBatchSize; the wrapping transaction keeps the whole commit
// atomic regardless of chunking.
func CommitBatches(ctx context.Context, db *gorm.DB, batches *Batches) (*CommitSummary, error) {
	summary := &CommitSummary{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(batches.Consumers) > 0 {
			if err := tx.CreateInBatches(batches.Consumers, config.BulkBatchSize).Error; err != nil {
				return err
			}
			summary.ConsumersCreated = len(batches.Consumers)
		}

		consumerIds, err := consumerIdsByNumber(tx)
		if err != nil {
			return err
		}

		var addresses []*models.Address
		for i, address := range batches.Addresses {
			id, ok := consumerIds[batches.AddressConsumerNumbers[i]]
			if !ok {
				continue
			}
			address.OwnerId = id
			addresses = append(addresses, address)
		}
		if len(addresses) > 0 {
			if err := tx.CreateInBatches(addresses, config.BulkBatchSize).Error; err != nil {
				return err
			}
			summary.AddressesCreated = len(addresses)
		}

		var contacts []*models.Contact
		for i, contact := range batches.Contacts {
			id, ok := consumerIds[batches.ContactConsumerNumbers[i]]
			if !ok {
				continue
			}
			contact.OwnerId = id
			contacts = append(contacts, contact)
		}
		if len(contacts) > 0 {
			if err := tx.CreateInBatches(contacts, config.BulkBatchSize).Error; err != nil {
				return err
			}
			summary.ContactsCreated = len(contacts)
		}

		if len(batches.Variants) > 0 {
			if err := tx.CreateInBatches(batches.Variants, config.BulkBatchSize).Error; err != nil {
				return err
			}
			summary.VariantsCreated = len(batches.Variants)
		}

		// Re-read variant ids: a connection may reference a variant created
		// moments ago in this same transaction.
		variantIds, err := variantIdsByCode(tx)
		if err != nil {
			return err
		}

		var connections []*models.ConnectionDetail
		for i, connection := range batches.Connections {
			consumerId, ok := consumerIds[batches.ConnectionConsumerNumbers[i]]
			if !ok {
				summary.ConnectionsDropped++
				continue
			}
			connection.ConsumerId = consumerId
			if code, ok := batches.ConnectionProductCodes[connection.SvNumber]; ok {
				connection.ProductId = variantIds[code]
			}
			connections = append(connections, connection)
		}
		if len(connections) > 0 {
			if err := tx.CreateInBatches(connections, config.BulkBatchSize).Error; err != nil {
				return err
			}
			summary.ConnectionsCreated = len(connections)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func consumerIdsByNumber(tx *gorm.DB) (map[string]int, error) {
	type pair struct {
		ID             int
		ConsumerNumber string
	}
	var pairs []pair
	if err := tx.Model(&models.Consumer{}).
		Select("id", "consumer_number").Find(&pairs).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(pairs))
	for _, p := range pairs {
		ids[p.ConsumerNumber] = p.ID
	}
	return ids, nil
}

func variantIdsByCode(tx *gorm.DB) (map[string]int, error) {
	type pair struct {
		ID          int
		ProductCode string
	}
	var pairs []pair
	if err := tx.Model(&models.ProductVariant{}).
		Select("id", "product_code").Find(&pairs).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(pairs))
	for _, p := range pairs {
		ids[p.ProductCode] = p.ID
	}
	return ids, nil
}
