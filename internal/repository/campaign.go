package repository

import (
	"errors"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"

	"gorm.io/gorm"
)

// CampaignRepository handles database operations for campaigns
type CampaignRepository struct {
	db *gorm.DB
}

// Ensure CampaignRepository implements CampaignRepositoryInterface
var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// GetOrCreate returns the campaign with the given name, creating it if absent
func (r *CampaignRepository) GetOrCreate(name string) (*models.Campaign, error) {
	campaign := &models.Campaign{Name: name}
	if err := r.db.Where("name = ?", name).FirstOrCreate(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetByName retrieves a campaign by name
func (r *CampaignRepository) GetByName(name string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.First(&campaign, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// GetAll retrieves every campaign, newest first
func (r *CampaignRepository) GetAll() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := r.db.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}
