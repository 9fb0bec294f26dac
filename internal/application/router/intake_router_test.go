package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/OpenRICA/permit-intake/internal/application/service"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, sqlMock
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)
	return args.Error(0)
}

func setupRouter(t *testing.T) (*IntakeRouter, sqlmock.Sqlmock, *MockNotifier) {
	t.Helper()
	db, sqlMock := setupTestDB(t)
	notifier := new(MockNotifier)
	svc := service.NewIntakeService(db, notifier, "RICA Import Permit Application Received")
	return NewIntakeRouter(svc, db), sqlMock, notifier
}

const validBody = `{
	"citizenship": "Rwandan",
	"identification_number": "1198000000000000",
	"other_names": "Jean",
	"surname": "Mutesi",
	"nationality": "Rwandan",
	"business_type": "Retailer",
	"company_name": "Acme Ltd",
	"tin_number": "123456789",
	"registration_date": "2024-01-15",
	"purpose_of_importation": "Direct sale",
	"product_category": "General purpose",
	"product_name": "Bolts",
	"description": "Steel bolts",
	"unit_of_measurement": "Kgs",
	"quantity": 500
}`

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestIntakeRouter_HandleSubmit_Success(t *testing.T) {
	router, sqlMock, notifier := setupRouter(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	sqlMock.ExpectCommit()
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Form submitted successfully!", decodeBody(t, rec)["message"])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestIntakeRouter_HandleSubmit_MissingField(t *testing.T) {
	router, sqlMock, notifier := setupRouter(t)

	// company_name removed from an otherwise valid payload
	body := strings.Replace(validBody, `"company_name": "Acme Ltd",`, "", 1)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "company_name is required", decodeBody(t, rec)["error"])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestIntakeRouter_HandleSubmit_MalformedJSON(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeBody(t, rec)["error"])
}

func TestIntakeRouter_HandleSubmit_TypeMismatchNamesField(t *testing.T) {
	router, _, _ := setupRouter(t)

	body := strings.Replace(validBody, `"quantity": 500`, `"quantity": "five hundred"`, 1)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity has an invalid type", decodeBody(t, rec)["error"])
}

func TestIntakeRouter_HandleSubmit_PersistenceFailureIsGeneric(t *testing.T) {
	router, sqlMock, _ := setupRouter(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnError(errors.New("pq: relation does not exist"))
	sqlMock.ExpectRollback()

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Driver detail must not leak to the client.
	assert.Equal(t, "failed to submit application", decodeBody(t, rec)["error"])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestIntakeRouter_HandleIndex(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.HandleIndex(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the RICA Import Permit Application API!", rec.Body.String())
}

func TestIntakeRouter_HandleHealth(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.HandleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}
