package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/config"
	"github.com/fieldtrack/fieldtrack-api/internal/constants"
	"github.com/fieldtrack/fieldtrack-api/internal/database"
	"github.com/fieldtrack/fieldtrack-api/internal/dto"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"github.com/fieldtrack/fieldtrack-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// recordingMailer captures outgoing reset mail instead of dialing SMTP.
type recordingMailer struct {
	lastEmail string
	lastURL   string
	err       error
}

func (m *recordingMailer) SendPasswordReset(toEmail, resetURL string) error {
	if m.err != nil {
		return m.err
	}
	m.lastEmail = toEmail
	m.lastURL = resetURL
	return nil
}

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
	mailer      *recordingMailer
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.PasswordResetToken{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	cfg := &config.Config{
		FrontendURL:   "http://localhost:3000",
		ResetTokenTTL: time.Hour,
	}
	mailer := &recordingMailer{}
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	authService := services.NewAuthService(userRepo, tokenRepo, mailer, cfg)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
		mailer:      mailer,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, role models.UserRole) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
		FullName:     "Test " + username,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	user := createTestUser(t, env.db, "surveyor1", "supersecret", models.RoleSurveyor)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "surveyor1",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, models.RoleSurveyor, response.Role)
	require.Equal(t, user.Username, response.Username)
	require.Equal(t, user.Email, response.Email)
	require.Equal(t, user.FullName, response.FullName)
	require.Equal(t, user.ID, response.ID)

	// Logging in again hands back the same token.
	w = postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "surveyor1",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var second dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.Equal(t, response.Token, second.Token)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)
	createTestUser(t, env.db, "known", "supersecret", models.RoleUser)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	wrongPassword := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "known",
		"password": "not-the-password",
	})
	unknownUser := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "nobody",
		"password": "supersecret",
	})

	// Both failure modes must be indistinguishable to the caller.
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestAuthHandler_Login_InactiveUser(t *testing.T) {
	env := setupAuthTestEnv(t)
	user := createTestUser(t, env.db, "retired", "supersecret", models.RoleUser)
	require.NoError(t, env.db.Model(user).Update("is_active", false).Error)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "retired",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	user := createTestUser(t, env.db, "changer", "oldpassword", models.RoleUser)

	call := func(payload map[string]string) *httptest.ResponseRecorder {
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/change-password", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)

		env.handler.ChangePassword(c)
		return w
	}

	w := call(map[string]string{
		"old_password":     "wrong-old",
		"new_password":     "newpassword",
		"confirm_password": "newpassword",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = call(map[string]string{
		"old_password":     "oldpassword",
		"new_password":     "newpassword",
		"confirm_password": "newpassword",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword")))
}

func TestAuthHandler_PasswordResetFlow(t *testing.T) {
	env := setupAuthTestEnv(t)
	user := createTestUser(t, env.db, "forgetful", "oldpassword", models.RoleUser)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)
	r.POST("/api/auth/password-reset", env.handler.RequestPasswordReset)
	r.POST("/api/auth/password-reset-confirm/:uid/:token", env.handler.ConfirmPasswordReset)

	w := postJSON(t, r, "/api/auth/password-reset", map[string]string{
		"email": user.Email,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, user.Email, env.mailer.lastEmail)
	require.NotEmpty(t, env.mailer.lastURL)

	// The link looks like {frontend}/reset-password/{uid}/{token}/.
	parts := strings.Split(strings.Trim(env.mailer.lastURL, "/"), "/")
	require.GreaterOrEqual(t, len(parts), 2)
	uid := parts[len(parts)-2]
	token := parts[len(parts)-1]

	confirmPath := fmt.Sprintf("/api/auth/password-reset-confirm/%s/%s", uid, token)
	w = postJSON(t, r, confirmPath, map[string]string{
		"new_password":     "brandnewpass",
		"confirm_password": "brandnewpass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/auth/login", map[string]string{
		"username": user.Username,
		"password": "brandnewpass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The token is single use.
	w = postJSON(t, r, confirmPath, map[string]string{
		"new_password":     "anotherpass1",
		"confirm_password": "anotherpass1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_PasswordReset_UnknownEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/password-reset", env.handler.RequestPasswordReset)

	w := postJSON(t, r, "/api/auth/password-reset", map[string]string{
		"email": "nobody@example.com",
	})

	// Same acknowledgment as the known-email case, and no mail sent.
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, env.mailer.lastEmail)
}

func TestAuthHandler_PasswordReset_MailFailure(t *testing.T) {
	env := setupAuthTestEnv(t)
	user := createTestUser(t, env.db, "unlucky", "supersecret", models.RoleUser)
	env.mailer.err = errors.New("smtp connection refused")

	r := gin.New()
	r.POST("/api/auth/password-reset", env.handler.RequestPasswordReset)

	w := postJSON(t, r, "/api/auth/password-reset", map[string]string{
		"email": user.Email,
	})
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupAuthTestEnv(t)
	user := createTestUser(t, env.db, "leaver", "supersecret", models.RoleUser)

	token, _, err := env.authService.Login(user.Username, "supersecret")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token.Key)

	env.handler.Logout(c)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = env.authService.Authenticate(token.Key)
	require.ErrorIs(t, err, services.ErrInvalidToken)
}
