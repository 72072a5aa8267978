package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"

	"bloodlink/config"
	apimiddleware "bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router"
	"bloodlink/internal/delivery/api/router/handler"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/infra/auth"
	"bloodlink/internal/infra/metrics"
	"bloodlink/internal/infra/pubsub"
	"bloodlink/internal/infra/qrcode"
	"bloodlink/internal/mocks/memory"
	"bloodlink/internal/usecase/impl"
	"bloodlink/internal/util"
)

type testApp struct {
	echo   *echo.Echo
	tokens service.TokenService
	store  *memory.Store
}

// newTestApp wires the real services over the in-memory store.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret:  "e2e-secret",
			TokenTTL:   7 * 24 * time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	store := memory.NewStore()

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Lc: lc, Config: cfg, Logger: logger})
	require.NoError(t, err)

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    store,
		UserRepo:     store,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Metrics:      collector,
		Logger:       logger,
	})
	donationUC := impl.NewDonationService(impl.DonationServiceParams{
		DonationRepo: store.DonationRepo(),
		Publisher:    publisher,
		QRCode:       qrcode.NewQRCodeService(cfg),
		Metrics:      collector,
		Logger:       logger,
	})

	e := newEcho(ServerParams{
		Lc:       lc,
		Cfg:      cfg,
		Logger:   logger,
		Observer: collector,
		RouterParams: router.RouterParams{
			UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
			DonationHandler: handler.NewDonationHandler(handler.DonationHandlerParams{DonationUC: donationUC, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
				TokenService: tokens,
				Metrics:      collector,
				Logger:       logger,
			}),
			Gatherer: reg,
		},
	})

	return &testApp{echo: e, tokens: tokens, store: store}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type authBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone"`
		BloodType string    `json:"bloodType"`
	} `json:"user"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func alexRegistration() map[string]string {
	return map[string]string{
		"name":            "Alex",
		"email":           "a@x.com",
		"phone":           "555-0100",
		"bloodType":       "O+",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}
}

func registerAlex(t *testing.T, app *testApp) authBody {
	t.Helper()

	rec := app.do(t, http.MethodPost, "/api/auth/register", "", alexRegistration())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[authBody](t, rec)
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/auth/register", "", alexRegistration())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")

	registered := decode[authBody](t, rec)
	assert.True(t, registered.Success)
	assert.Equal(t, "User registered successfully", registered.Message)
	assert.Equal(t, "Alex", registered.User.Name)
	assert.Equal(t, "a@x.com", registered.User.Email)
	assert.Equal(t, "O+", registered.User.BloodType)

	claims, err := app.tokens.VerifyToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, registered.User.ID, claims.UserID)

	rec = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loggedIn := decode[authBody](t, rec)
	assert.Equal(t, "Login successful", loggedIn.Message)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)

	wrongPassword := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret1x"})
	unknownEmail := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "b@x.com", "password": "secret1"})
	for _, rec := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail} {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode[errorBody](t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "Invalid email or password", body.Message)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	}
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAPI_RegisterFailures(t *testing.T) {
	app := newTestApp(t)
	registerAlex(t, app)

	mismatch := alexRegistration()
	mismatch["email"] = "m@x.com"
	mismatch["confirmPassword"] = "secret2"

	missing := alexRegistration()
	missing["email"] = "n@x.com"
	delete(missing, "phone")

	badType := alexRegistration()
	badType["email"] = "t@x.com"
	badType["bloodType"] = "C+"

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"duplicate email", alexRegistration(), http.StatusConflict, "EMAIL_ALREADY_REGISTERED", "Email already registered"},
		{"passwords differ", mismatch, http.StatusBadRequest, "VALIDATION_FAILED", "Passwords do not match"},
		{"missing field", missing, http.StatusBadRequest, "VALIDATION_FAILED", "All required fields must be provided"},
		{"invalid blood type", badType, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid blood type"},
		{"malformed json", `{"name":`, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid registration input"},
		{"password is a number", `{"name":"Alex","email":"p@x.com","phone":"555","password":123456,"confirmPassword":"123456","bloodType":"O+"}`, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid registration input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/api/auth/register", "", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode[errorBody](t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}

	assert.Equal(t, 1, app.store.UserCreates())
}

func TestAPI_BindFailuresCarryDecoderDetails(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name    string
		path    string
		body    string
		wantMsg string
	}{
		{"register with numeric password", "/api/auth/register", `{"name":"Alex","email":"p@x.com","phone":"555","password":123456,"confirmPassword":"123456","bloodType":"O+"}`, "Invalid registration input"},
		{"login with email array", "/api/auth/login", `{"email":["a"],"password":"secret1"}`, "Invalid login input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, tt.path, "", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[errorBody](t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Contains(t, body.Error.Details, "Unmarshal type error")
		})
	}

	assert.Equal(t, 0, app.store.UserCreates())
}

func TestAPI_Logout(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/auth/logout", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, rec.Body.String())
}

type donationBody struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	BloodType string    `json:"bloodType"`
	Status    string    `json:"status"`
}

func TestAPI_Donations(t *testing.T) {
	app := newTestApp(t)
	alex := registerAlex(t, app)

	soon := util.FormatDate(time.Now().AddDate(0, 0, 7))
	later := util.FormatDate(time.Now().AddDate(0, 0, 30))
	schedule := func(date string) map[string]string {
		return map[string]string{
			"name":      "Alex",
			"email":     "a@x.com",
			"phone":     "555-0100",
			"date":      date,
			"bloodType": "O+",
		}
	}

	t.Run("requires a token", func(t *testing.T) {
		for _, path := range []string{"/api/donations/my-donations", "/api/donations/all"} {
			rec := app.do(t, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		}
		rec := app.do(t, http.MethodGet, "/api/donations/all", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	var first donationBody
	t.Run("schedule", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/donations/schedule", alex.Token, schedule(soon))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		body := decode[struct {
			Success  bool         `json:"success"`
			Message  string       `json:"message"`
			Donation donationBody `json:"donation"`
		}](t, rec)
		assert.True(t, body.Success)
		assert.Equal(t, "Donation scheduled successfully", body.Message)
		assert.Equal(t, "pending", body.Donation.Status)
		assert.Equal(t, soon, body.Donation.Date)
		assert.Equal(t, alex.User.ID, body.Donation.UserID)
		first = body.Donation

		rec = app.do(t, http.MethodPost, "/api/donations/schedule", alex.Token, schedule(later))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		past := app.do(t, http.MethodPost, "/api/donations/schedule", alex.Token, schedule(util.FormatDate(time.Now().AddDate(0, 0, -2))))
		assert.Equal(t, http.StatusBadRequest, past.Code)
		assert.Equal(t, "Donation date must be in the future", decode[errorBody](t, past).Message)

		garbled := app.do(t, http.MethodPost, "/api/donations/schedule", alex.Token, schedule("16/10/2026"))
		assert.Equal(t, http.StatusBadRequest, garbled.Code)

		empty := app.do(t, http.MethodPost, "/api/donations/schedule", alex.Token, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, empty.Code)
		assert.Equal(t, "All fields are required", decode[errorBody](t, empty).Message)
	})

	t.Run("listings are latest first", func(t *testing.T) {
		type listBody struct {
			Success   bool           `json:"success"`
			Donations []donationBody `json:"donations"`
		}

		mine := decode[listBody](t, app.do(t, http.MethodGet, "/api/donations/my-donations", alex.Token, nil))
		require.Len(t, mine.Donations, 2)
		assert.Equal(t, later, mine.Donations[0].Date)
		assert.Equal(t, soon, mine.Donations[1].Date)

		all := decode[listBody](t, app.do(t, http.MethodGet, "/api/donations/all", alex.Token, nil))
		require.Len(t, all.Donations, 2)
		assert.Equal(t, "Alex", all.Donations[0].UserName)
	})

	t.Run("empty listing is an array", func(t *testing.T) {
		other := app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "Sam", "email": "s@x.com", "phone": "555-0101", "bloodType": "A-",
			"password": "secret2", "confirmPassword": "secret2",
		})
		require.Equal(t, http.StatusCreated, other.Code)
		sam := decode[authBody](t, other)

		rec := app.do(t, http.MethodGet, "/api/donations/my-donations", sam.Token, nil)
		assert.JSONEq(t, `{"success":true,"donations":[]}`, rec.Body.String())

		// A pass for someone else's donation looks like a missing one.
		rec = app.do(t, http.MethodGet, "/api/donations/"+first.ID.String()+"/pass", sam.Token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("pass", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/donations/"+first.ID.String()+"/pass", alex.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

		rec = app.do(t, http.MethodGet, "/api/donations/not-a-uuid/pass", alex.Token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	app := newTestApp(t)
	registerAlex(t, app)

	rec := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = app.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bloodlink_registrations_total{outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), `bloodlink_http_requests_total{method="POST",route="/api/auth/register",status_code="201"} 1`)
}

func TestAPI_BodyLimit(t *testing.T) {
	app := newTestApp(t)

	huge := alexRegistration()
	huge["notes"] = strings.Repeat("x", 200*1024)

	rec := app.do(t, http.MethodPost, "/api/auth/register", "", huge)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
