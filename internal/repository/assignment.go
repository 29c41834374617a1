package repository

import (
	"lead-center-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for the assignment log.
// The log is append-only; rows are never updated or deleted.
type AssignmentRepository struct {
	db *gorm.DB
}

// Ensure AssignmentRepository implements AssignmentRepositoryInterface
var _ AssignmentRepositoryInterface = (*AssignmentRepository)(nil)

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create appends a single event to the log
func (r *AssignmentRepository) Create(event *models.Assignment) error {
	return r.db.Create(event).Error
}

// CreateBatch appends a batch of events inside one transaction, so a
// bulk-assign lands completely or not at all.
func (r *AssignmentRepository) CreateBatch(events []*models.Assignment) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, ev := range events {
			if err := tx.Create(ev).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetAll retrieves the full log snapshot
func (r *AssignmentRepository) GetAll() ([]models.Assignment, error) {
	var events []models.Assignment
	if err := r.db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetByLeadRef retrieves one lead's history, newest first
func (r *AssignmentRepository) GetByLeadRef(leadRef string) ([]models.Assignment, error) {
	var events []models.Assignment
	err := r.db.Where("lead_ref = ?", leadRef).
		Order("assigned_time DESC, seq DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByUserID retrieves every event ever assigned to one caller
func (r *AssignmentRepository) GetByUserID(userID uuid.UUID) ([]models.Assignment, error) {
	var events []models.Assignment
	if err := r.db.Where("user_id = ?", userID).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
