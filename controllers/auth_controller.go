package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soham2710/bulemo/config"
	"github.com/soham2710/bulemo/models"
	"github.com/soham2710/bulemo/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues the signed session token, both in
// the body and as an HttpOnly cookie. Unknown usernames, wrong passwords,
// and empty fields all get the same generic 401 to prevent user enumeration.
func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	username := strings.TrimSpace(payload.Username)
	password := payload.Password
	if username == "" || password == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var admin models.Admin
	if err := a.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Login lookup failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Error signing in")
			return
		}
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(admin.Password, password) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateSessionToken(config.JWTSecret, admin.ID, admin.Username, admin.Role, config.SessionTTL)
	if err != nil {
		log.Printf("❌ Failed to sign session token: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error signing in")
		return
	}

	c.SetCookie(config.SessionCookieName, token, int(config.SessionTTL.Seconds()), "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"role":     admin.Role,
		},
	})
}
