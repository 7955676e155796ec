package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soham2710/bulemo/services"
	"github.com/soham2710/bulemo/utils"
)

type ContactController struct {
	ContactSvc *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	return &ContactController{ContactSvc: svc}
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// CreateContact (POST /contact) — the one unauthenticated write in the API.
func (ct *ContactController) CreateContact(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	submission, err := ct.ContactSvc.Create(services.ContactCreateInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Company: payload.Company,
		Service: payload.Service,
		Message: payload.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.JSONError(c, http.StatusBadRequest, "Name, email, and message are required")
			return
		}
		log.Printf("❌ Error submitting contact form: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error submitting contact form")
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Contact form submitted successfully", gin.H{
		"id": submission.ID,
	})
}

// GetContacts (GET /contact, admin).
func (ct *ContactController) GetContacts(c *gin.Context) {
	page, limit := parsePagination(c)

	submissions, total, err := ct.ContactSvc.List(page, limit)
	if err != nil {
		log.Printf("❌ Error fetching contact submissions: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching contact submissions")
		return
	}
	utils.JSONList(c, http.StatusOK, submissions, buildPagination(total, page, limit))
}

// GetContact (GET /contact/:id, admin).
func (ct *ContactController) GetContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	submission, err := ct.ContactSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Contact not found")
			return
		}
		log.Printf("❌ Error fetching contact %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching contact")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, submission)
}

// DeleteContact (DELETE /contact/:id, admin).
func (ct *ContactController) DeleteContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	if err := ct.ContactSvc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Contact not found")
			return
		}
		log.Printf("❌ Error deleting contact %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Error deleting contact")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Contact deleted successfully", nil)
}

// DownloadContacts (GET /contact/download, admin) — every submission as a
// CSV attachment.
func (ct *ContactController) DownloadContacts(c *gin.Context) {
	data, err := ct.ContactSvc.ExportCSV()
	if err != nil {
		log.Printf("❌ Error exporting contacts: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error downloading contacts")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="contacts.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
