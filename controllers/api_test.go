package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soham2710/bulemo/config"
	"github.com/soham2710/bulemo/controllers"
	"github.com/soham2710/bulemo/models"
	"github.com/soham2710/bulemo/routes"
	"github.com/soham2710/bulemo/services"
	"github.com/soham2710/bulemo/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("api-test-secret")
}

// newTestAPI wires the real router against an in-memory database and returns
// it together with a seeded admin account.
func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.BlogPost{},
		&models.ContactSubmission{},
	))

	hash, err := utils.HashPassword("S3cure!password")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		Username: "admin",
		Password: hash,
		Role:     "admin",
	}).Error)

	router := routes.SetupRouter(
		controllers.NewAuthController(db),
		controllers.NewBlogController(services.NewBlogService(db)),
		controllers.NewContactController(services.NewContactService(db)),
	)
	return router, db
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/auth/login", map[string]string{
		"username": "admin",
		"password": "S3cure!password",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func doJSON(router *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *utils.Pagination `json:"pagination"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
