package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/kyystore-api/config"
	"github.com/oksasatya/kyystore-api/internal/application"
	"github.com/oksasatya/kyystore-api/internal/container"
	"github.com/oksasatya/kyystore-api/internal/infrastructure/memory"
	"github.com/oksasatya/kyystore-api/internal/interface/middleware"
	"github.com/oksasatya/kyystore-api/pkg/fieldcrypt"
	"github.com/oksasatya/kyystore-api/pkg/helpers"
	"github.com/oksasatya/kyystore-api/pkg/validation"
)

const (
	adminEmail    = "admin@kyystore.gg"
	adminPassword = "admin1234"
)

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	helpers.PasswordCost = bcrypt.MinCost
	validation.Init()

	env, err := fieldcrypt.New("router-test-secret")
	require.NoError(t, err)
	users := memory.NewUserRepository()
	jwt := helpers.NewJWTManager("router-test-jwt", time.Hour)
	logger := helpers.NewDiscardLogger()

	container.SetConfig(&config.Config{ServiceName: "Kyystore API", DebugMetricsEnabled: true})
	container.SetLogger(logger)
	container.SetRedis(nil)
	container.SetJWT(jwt)
	container.SetEnvelope(env)
	container.SetUserRepo(users)
	container.SetProductRepo(memory.NewProductRepository(nil))
	container.SetPublisher(nil)

	seeder := application.NewService(users, jwt, env, nil, logger)
	require.NoError(t, seeder.SeedAdmin(context.Background(), application.DemoAdminSeed(adminEmail, adminPassword, "Admin")))

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func registration(email string) map[string]string {
	return map[string]string{
		"email":       email,
		"password":    "rahasia123",
		"name":        "Budi Santoso",
		"nik":         "3201234567890002",
		"dateOfBirth": "1995-06-20",
		"phone":       "081298765432",
		"address":     "Jl. Merdeka No. 10, Bandung",
		"cardNumber":  "4111 1111 1111 1111",
		"cardExpiry":  "09/27",
		"cardCvv":     "456",
	}
}

func login(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	w, env := call(t, h, http.MethodPost, "/api/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"service":"Kyystore API","status":"ok","encryption":"AES-256-GCM"}`, w.Body.String())
}

func TestRegisterLoginAndBrowse(t *testing.T) {
	h := newTestServer(t)

	w, env := call(t, h, http.MethodPost, "/api/register", "", registration("budi@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reg struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Encryption struct {
			Algorithm       string   `json:"algorithm"`
			FieldsEncrypted []string `json:"fieldsEncrypted"`
		} `json:"encryption"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	assert.Regexp(t, `^u-\d+`, reg.User.ID)
	assert.Equal(t, "AES-256-GCM", reg.Encryption.Algorithm)
	assert.Len(t, reg.Encryption.FieldsEncrypted, 7)
	assert.NotContains(t, w.Body.String(), "3201234567890002")

	token := login(t, h, "budi@example.com", "rahasia123")

	w, env = call(t, h, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"role":"user"`)

	w, env = call(t, h, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Len(t, products.Items, 6)

	w, _ = call(t, h, http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminSeesDecryptedCustomers(t *testing.T) {
	h := newTestServer(t)
	w, _ := call(t, h, http.MethodPost, "/api/register", "", registration("siti@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := login(t, h, adminEmail, adminPassword)
	w, env := call(t, h, http.MethodGet, "/api/admin/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report application.CustomerReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Len(t, report.Items, 1)
	c := report.Items[0]
	assert.Equal(t, "siti@example.com", c.Email)
	assert.Equal(t, "3201234567890002", c.PersonalData.NIK.Decrypted)
	assert.Equal(t, "************0002", c.PersonalData.NIK.Masked)
	assert.Equal(t, "4111111111111111", c.PaymentData.CardNumber.Decrypted)
	assert.Equal(t, "***", c.PaymentData.CardCVV.Masked)
	assert.Empty(t, c.PersonalData.Address.Masked)
	assert.Regexp(t, `^[0-9a-f]{24}:[0-9a-f]{32}:[0-9a-f]+$`, c.PersonalData.Address.Encrypted)
	assert.Equal(t, "AES-256-GCM", report.Encryption.Algorithm)
}

func TestRegisterRejections(t *testing.T) {
	h := newTestServer(t)

	w, _ := call(t, h, http.MethodPost, "/api/register", "", registration("dup@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	w, env := call(t, h, http.MethodPost, "/api/register", "", registration("dup@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", env.Message)

	bad := registration("bad@example.com")
	bad["nik"] = "12345"
	bad["cardCvv"] = "12"
	w, env = call(t, h, http.MethodPost, "/api/register", "", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(env.Error), `"nik"`)
	assert.Contains(t, string(env.Error), `"cardCvv"`)

	missing := registration("missing@example.com")
	delete(missing, "address")
	w, _ = call(t, h, http.MethodPost, "/api/register", "", missing)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginFailures(t *testing.T) {
	h := newTestServer(t)

	w, env := call(t, h, http.MethodPost, "/api/login", "", map[string]string{"email": adminEmail, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid email or password", env.Message)

	w, _ = call(t, h, http.MethodPost, "/api/login", "", map[string]string{"email": "ghost@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestServer(t)
	for _, path := range []string{"/api/me", "/api/products", "/api/admin/users"} {
		w, env := call(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "no token", env.Message, path)

		w, env = call(t, h, http.MethodGet, path, "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "invalid token", env.Message, path)
	}
}

func TestDebugVars(t *testing.T) {
	h := newTestServer(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fieldcrypt"`)
}
