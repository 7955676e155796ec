package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/soham2710/bulemo/models"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

type ContactCreateInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message string
}

func (s *ContactService) Create(in ContactCreateInput) (models.ContactSubmission, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return models.ContactSubmission{}, ErrValidation
	}

	submission := models.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
		Service: in.Service,
		Message: in.Message,
	}
	if err := s.DB.Create(&submission).Error; err != nil {
		return models.ContactSubmission{}, err
	}
	return submission, nil
}

func (s *ContactService) List(page, limit int) ([]models.ContactSubmission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.DB.Model(&models.ContactSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []models.ContactSubmission
	if err := s.DB.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&submissions).Error; err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (s *ContactService) GetByID(id uint) (models.ContactSubmission, error) {
	var submission models.ContactSubmission
	if err := s.DB.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ContactSubmission{}, ErrNotFound
		}
		return models.ContactSubmission{}, err
	}
	return submission, nil
}

func (s *ContactService) Delete(id uint) error {
	result := s.DB.Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExportCSV serializes every submission, newest first, with a header row.
// encoding/csv handles the quoting contract: fields containing the delimiter,
// a quote, or a newline get wrapped in quotes with inner quotes doubled.
func (s *ContactService) ExportCSV() ([]byte, error) {
	var submissions []models.ContactSubmission
	if err := s.DB.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "name", "email", "phone", "company", "service", "message", "createdAt"}); err != nil {
		return nil, err
	}
	for _, sub := range submissions {
		record := []string{
			strconv.FormatUint(uint64(sub.ID), 10),
			sub.Name,
			sub.Email,
			sub.Phone,
			sub.Company,
			sub.Service,
			sub.Message,
			sub.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
