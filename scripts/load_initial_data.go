package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"lead-center-backend/internal/config"
	"lead-center-backend/internal/database"
	"lead-center-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type UserData struct {
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone,omitempty"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Status   string `yaml:"status"`
}

type CampaignData struct {
	Name string `yaml:"name"`
}

type LeadData struct {
	RefID    string   `yaml:"ref_id"`
	Name     string   `yaml:"name"`
	Phone    string   `yaml:"phone"`
	Gender   string   `yaml:"gender,omitempty"`
	School   string   `yaml:"school,omitempty"`
	Locality string   `yaml:"locality,omitempty"`
	District string   `yaml:"district,omitempty"`
	Campaign string   `yaml:"campaign,omitempty"`
	AssignTo string   `yaml:"assign_to,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CampaignsFile struct {
	Campaigns []CampaignData `yaml:"campaigns"`
}

type LeadsFile struct {
	Leads []LeadData `yaml:"leads"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	campaigns, err := loadCampaigns(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load campaigns: %w", err)
	}

	leads, err := loadLeads(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	// Create users first; lead assignments reference them by name.
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Name] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	campaignMap := make(map[string]*models.Campaign)
	campaignCreated := 0
	for _, campaignData := range campaigns {
		campaign, created, err := createCampaign(db, campaignData)
		if err != nil {
			return fmt.Errorf("failed to create campaign %s: %w", campaignData.Name, err)
		}
		campaignMap[campaignData.Name] = campaign
		if created {
			campaignCreated++
		}
	}
	log.Printf("Campaigns: %d created, %d total", campaignCreated, len(campaigns))

	leadCreated := 0
	assignmentsCreated := 0
	for _, leadData := range leads {
		created, assigned, err := createLead(db, leadData, campaignMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create lead %s: %w", leadData.RefID, err)
		}
		if created {
			leadCreated++
		}
		if assigned {
			assignmentsCreated++
		}
	}
	log.Printf("Leads: %d created, %d total (%d assigned)", leadCreated, len(leads), assignmentsCreated)

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "users.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file UsersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Users, nil
}

func loadCampaigns(dataDir string) ([]CampaignData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "campaigns.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file CampaignsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Campaigns, nil
}

func loadLeads(dataDir string) ([]LeadData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "leads.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file LeadsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Leads, nil
}

// createUser inserts a user unless one with the same email already exists.
// Passwords in the seed files are plaintext and hashed here.
func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	role := models.UserRole(data.Role)
	if role == "" {
		role = models.UserRoleCaller
	}
	status := models.UserStatus(data.Status)
	if status == "" {
		status = models.UserStatusActive
	}

	user := &models.User{
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		Role:         role,
		Status:       status,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createCampaign(db *gorm.DB, data CampaignData) (*models.Campaign, bool, error) {
	var existing models.Campaign
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	campaign := &models.Campaign{Name: data.Name}
	if err := db.Create(campaign).Error; err != nil {
		return nil, false, err
	}
	return campaign, true, nil
}

// createLead inserts a lead unless its ref id is already present, attaching
// the named campaign and appending an initial assignment event when the seed
// names a caller.
func createLead(db *gorm.DB, data LeadData, campaignMap map[string]*models.Campaign, userMap map[string]*models.User) (bool, bool, error) {
	var existing models.Lead
	err := db.First(&existing, "ref_id = ?", data.RefID).Error
	if err == nil {
		return false, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, false, err
	}

	lead := &models.Lead{
		RefID:        data.RefID,
		Name:         data.Name,
		Phone:        data.Phone,
		Gender:       data.Gender,
		School:       data.School,
		Locality:     data.Locality,
		District:     data.District,
		CustomFields: models.CustomFieldMap{},
	}
	if data.Campaign != "" {
		campaign, ok := campaignMap[data.Campaign]
		if !ok {
			return false, false, fmt.Errorf("unknown campaign %q", data.Campaign)
		}
		lead.Campaigns = []models.Campaign{*campaign}
	}
	if err := db.Create(lead).Error; err != nil {
		return false, false, err
	}

	if data.AssignTo == "" {
		return true, false, nil
	}

	caller, ok := userMap[data.AssignTo]
	if !ok {
		return false, false, fmt.Errorf("unknown user %q", data.AssignTo)
	}
	event := &models.Assignment{
		LeadRef:      lead.RefID,
		UserID:       caller.ID,
		UserName:     caller.Name,
		AssignedTime: time.Now(),
		Disposition:  models.DispositionNew,
	}
	if err := db.Create(event).Error; err != nil {
		return false, false, err
	}
	return true, true, nil
}
