package handlers

import (
	"encoding/csv"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportHandler handles spreadsheet uploads that create leads in bulk
type ImportHandler struct {
	importService service.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportLeads handles POST /leads/import
// @Summary Import leads from a spreadsheet
// @Description Upload a CSV or XLSX file of leads. The whole file is validated and inserted atomically; any bad row rejects the entire batch.
// @Tags leads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Param campaign formData string false "Campaign to tag imported leads with"
// @Success 201 {object} map[string]interface{} "Number of leads created"
// @Failure 400 {object} ErrorResponse "Malformed file or invalid row"
// @Failure 409 {object} ErrorResponse "Duplicate lead in file"
// @Security BearerAuth
// @Router /leads/import [post]
func (h *ImportHandler) ImportLeads(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	batch, err := parseUpload(fileHeader)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.importService.Import(batch, c.PostForm("campaign"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"count": count})
}

// parseUpload reads an uploaded spreadsheet into a raw header plus rows,
// dispatching on file extension. Schema validation happens in the service.
func parseUpload(fileHeader *multipart.FileHeader) (*service.ImportBatch, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("file", "could not open upload")
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		return parseCSV(file)
	case ".xlsx":
		return parseXLSX(file)
	default:
		return nil, apperrors.NewValidationError("file", "unsupported file type, expected .csv or .xlsx")
	}
}

func parseCSV(file multipart.File) (*service.ImportBatch, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewValidationError("file", "malformed CSV: "+err.Error())
	}
	if len(records) == 0 {
		return nil, apperrors.NewValidationError("file", "file is empty")
	}

	return &service.ImportBatch{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

func parseXLSX(file multipart.File) (*service.ImportBatch, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "malformed XLSX: "+err.Error())
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewValidationError("file", "workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewValidationError("file", "could not read sheet: "+err.Error())
	}
	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("file", "file is empty")
	}

	return &service.ImportBatch{
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}
