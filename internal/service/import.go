package service

import (
	"fmt"
	"strings"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/logger"
	"lead-center-backend/internal/repository"
)

// Columns an import file must carry. Anything else is optional and defaults
// to a placeholder.
var requiredImportColumns = []string{"name", "phone"}

// placeholderValue fills optional columns absent from a row
const placeholderValue = "-"

// ImportBatch is a parsed spreadsheet: one header row plus data rows.
// Transport parses CSV/XLSX into this shape; the service owns validation.
type ImportBatch struct {
	Header []string
	Rows   [][]string
}

// ImportService creates leads in bulk from spreadsheet uploads
type ImportService struct {
	leadRepo    repository.LeadRepositoryInterface
	phoneRegion string
	maxRows     int
}

// Ensure ImportService implements ImportServiceInterface
var _ ImportServiceInterface = (*ImportService)(nil)

// NewImportService creates a new ImportService
func NewImportService(leadRepo repository.LeadRepositoryInterface, phoneRegion string, maxRows int) *ImportService {
	if maxRows <= 0 {
		maxRows = 10000
	}
	return &ImportService{
		leadRepo:    leadRepo,
		phoneRegion: phoneRegion,
		maxRows:     maxRows,
	}
}

// Import validates and writes a batch of leads. The column schema is checked
// before any row is processed and the whole batch is one transaction: a
// rejected import creates zero leads. Optional fields default liberally;
// only the schema is strict.
func (s *ImportService) Import(batch *ImportBatch, campaignName string) (int, error) {
	if batch == nil || len(batch.Header) == 0 {
		return 0, apperrors.NewValidationError("file", "import file has no header row")
	}
	if len(batch.Rows) == 0 {
		return 0, apperrors.NewValidationError("file", "import file has no data rows")
	}
	if len(batch.Rows) > s.maxRows {
		return 0, apperrors.NewValidationError("file",
			fmt.Sprintf("import exceeds %d rows", s.maxRows))
	}

	cols, err := columnIndex(batch.Header)
	if err != nil {
		return 0, err
	}

	leads := make([]*models.Lead, 0, len(batch.Rows))
	for i, row := range batch.Rows {
		lead, err := s.rowToLead(cols, row)
		if err != nil {
			return 0, apperrors.NewValidationError(
				fmt.Sprintf("row %d", i+2), // +2: 1-based plus header row
				err.Error(),
			)
		}
		leads = append(leads, lead)
	}

	count, err := s.leadRepo.CreateBatch(leads, strings.TrimSpace(campaignName))
	if err != nil {
		return 0, fmt.Errorf("failed to import leads: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"rows":     count,
		"campaign": campaignName,
	}).Info("imported leads")
	return count, nil
}

// columnIndex maps normalized header names to their positions and rejects
// the batch when a required column is missing.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[normalizeHeader(h)] = i
	}
	for _, required := range requiredImportColumns {
		if _, ok := cols[required]; !ok {
			return nil, apperrors.NewValidationError(required, "required column is missing")
		}
	}
	return cols, nil
}

func (s *ImportService) rowToLead(cols map[string]int, row []string) (*models.Lead, error) {
	name := cell(cols, row, "name")
	phone := cell(cols, row, "phone")
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is empty")
	}

	refID := cell(cols, row, "ref_id")
	if refID == "" {
		refID = NewLeadRefID()
	}

	return &models.Lead{
		RefID:        refID,
		Name:         name,
		Phone:        NormalizePhone(phone, s.phoneRegion),
		Gender:       cellOrPlaceholder(cols, row, "gender"),
		School:       cellOrPlaceholder(cols, row, "school"),
		Locality:     cellOrPlaceholder(cols, row, "locality"),
		District:     cellOrPlaceholder(cols, row, "district"),
		CustomFields: models.CustomFieldMap{},
	}, nil
}

func cell(cols map[string]int, row []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellOrPlaceholder(cols map[string]int, row []string, name string) string {
	if v := cell(cols, row, name); v != "" {
		return v
	}
	return placeholderValue
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	return h
}
