package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillforge/config"
	"skillforge/database"
	"skillforge/models"
	authRoutes "skillforge/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func post(t *testing.T, app *fiber.App, target string, payload interface{}) (int, envelope) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestSignupAndLogin(t *testing.T) {
	app, db := setupApp(t)

	code, env := post(t, app, "/auth/signup", fiber.Map{
		"name":        "Ravi Kumar",
		"email":       "ravi@example.com",
		"password":    "secret123",
		"role":        "student",
		"roll_number": "CS21B042",
		"branch":      "CSE",
	})
	require.Equal(t, http.StatusCreated, code)

	var created models.User
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.RoleStudent, created.Role)

	// Password is bcrypt hashed at rest, never returned.
	var stored models.User
	require.NoError(t, db.Where("email = ?", "ravi@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)

	code, env = post(t, app, "/auth/login", fiber.Map{
		"email":    "ravi@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, code)

	var login struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "ravi@example.com", login.User.Email)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app, _ := setupApp(t)

	payload := fiber.Map{
		"name":        "Ravi Kumar",
		"email":       "ravi@example.com",
		"password":    "secret123",
		"role":        "student",
		"roll_number": "CS21B042",
		"branch":      "CSE",
	}

	code, _ := post(t, app, "/auth/signup", payload)
	require.Equal(t, http.StatusCreated, code)

	code, env := post(t, app, "/auth/signup", payload)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email is already registered!", env.Message)
}

func TestSignupRejectsAdminRole(t *testing.T) {
	app, _ := setupApp(t)

	code, _ := post(t, app, "/auth/signup", fiber.Map{
		"name":     "Sneaky",
		"email":    "sneaky@example.com",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestSignupRequiresRoleProfileFields(t *testing.T) {
	app, _ := setupApp(t)

	// Teacher without department and designation
	code, env := post(t, app, "/auth/signup", fiber.Map{
		"name":     "Arun Mehta",
		"email":    "arun@example.com",
		"password": "secret123",
		"role":     "teacher",
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "department")
	assert.Contains(t, fields, "designation")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, _ := setupApp(t)

	code, _ := post(t, app, "/auth/signup", fiber.Map{
		"name":        "Ravi Kumar",
		"email":       "ravi@example.com",
		"password":    "secret123",
		"role":        "student",
		"roll_number": "CS21B042",
		"branch":      "CSE",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := post(t, app, "/auth/login", fiber.Map{
		"email":    "ravi@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials!", env.Message)
}
