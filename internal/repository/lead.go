package repository

import (
	"errors"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"

	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// Ensure LeadRepository implements LeadRepositoryInterface
var _ LeadRepositoryInterface = (*LeadRepository)(nil)

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// leadStoreOrder is the canonical listing order of leads. Caller queues
// follow this order, so it must be stable across requests.
func leadStoreOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, ref_id ASC")
}

// Create inserts a single lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// CreateBatch inserts a batch of imported leads, optionally tagging each with
// a campaign, inside one transaction. Either every lead is created or none.
func (r *LeadRepository) CreateBatch(leads []*models.Lead, campaignName string) (int, error) {
	if len(leads) == 0 {
		return 0, nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var campaign *models.Campaign
		if campaignName != "" {
			campaign = &models.Campaign{Name: campaignName}
			if err := tx.Where("name = ?", campaignName).FirstOrCreate(campaign).Error; err != nil {
				return err
			}
		}
		for _, lead := range leads {
			if campaign != nil {
				lead.Campaigns = []models.Campaign{*campaign}
			}
			if err := tx.Create(lead).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(leads), nil
}

// GetByRefID retrieves a lead by its opaque ref id, campaigns included
func (r *LeadRepository) GetByRefID(refID string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.Preload("Campaigns").First(&lead, "ref_id = ?", refID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves leads with pagination in lead-store order
func (r *LeadRepository) GetAll(limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := leadStoreOrder(r.db).Preload("Campaigns").Limit(limit).Offset(offset)
	if err := q.Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// GetAllOrdered retrieves the full lead snapshot in lead-store order.
// Queue building needs the whole store, not a page.
func (r *LeadRepository) GetAllOrdered() ([]models.Lead, error) {
	var leads []models.Lead
	if err := leadStoreOrder(r.db).Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// ExistingRefIDs returns the subset of refIDs that exist in the store
func (r *LeadRepository) ExistingRefIDs(refIDs []string) ([]string, error) {
	if len(refIDs) == 0 {
		return nil, nil
	}
	var existing []string
	err := r.db.Model(&models.Lead{}).
		Where("ref_id IN ?", refIDs).
		Pluck("ref_id", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// SetCustomField fills a single named custom field on a lead. The write is a
// one-time fill: it fails with ErrCustomFieldAlreadySet when the field
// already carries a value. Runs in a transaction so the read-check and write
// see the same row.
func (r *LeadRepository) SetCustomField(refID, field string, value models.CustomFieldValue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var lead models.Lead
		if err := tx.First(&lead, "ref_id = ?", refID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLeadNotFound
			}
			return err
		}
		if existing, ok := lead.CustomFields[field]; ok && existing.Value != "" {
			return apperrors.ErrCustomFieldAlreadySet
		}
		if lead.CustomFields == nil {
			lead.CustomFields = models.CustomFieldMap{}
		}
		lead.CustomFields[field] = value
		return tx.Model(&lead).Update("custom_fields", lead.CustomFields).Error
	})
}

// TagCampaign attaches the named campaign (created if absent) to every lead
// in refIDs, all-or-nothing. Returns the number of leads tagged.
func (r *LeadRepository) TagCampaign(refIDs []string, campaignName string) (int, error) {
	tagged := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		campaign := &models.Campaign{Name: campaignName}
		if err := tx.Where("name = ?", campaignName).FirstOrCreate(campaign).Error; err != nil {
			return err
		}

		var leads []models.Lead
		if err := tx.Where("ref_id IN ?", refIDs).Find(&leads).Error; err != nil {
			return err
		}
		if len(leads) != len(refIDs) {
			return apperrors.ErrLeadNotFound
		}

		for i := range leads {
			if err := tx.Model(&leads[i]).Association("Campaigns").Append(campaign); err != nil {
				return err
			}
		}
		tagged = len(leads)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tagged, nil
}
