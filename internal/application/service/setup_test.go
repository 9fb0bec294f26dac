package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/OpenRICA/permit-intake/internal/application/model"
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

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

// validPayload returns a complete Rwandan-citizen submission.
func validPayload() *model.SubmitApplicationDTO {
	return &model.SubmitApplicationDTO{
		Citizenship:          "Rwandan",
		IdentificationNumber: strPtr("1198000000000000"),
		OtherNames:           "Jean",
		Surname:              "Mutesi",
		Nationality:          "Rwandan",
		BusinessType:         "Retailer",
		CompanyName:          "Acme Ltd",
		TinNumber:            "123456789",
		RegistrationDate:     "2024-01-15",
		PurposeOfImportation: "Direct sale",
		ProductCategory:      "General purpose",
		ProductName:          "Bolts",
		Description:          "Steel bolts",
		UnitOfMeasurement:    "Kgs",
		Quantity:             500,
	}
}

func expectInsert(sqlMock sqlmock.Sqlmock, returnedID int64) {
	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(returnedID))
	sqlMock.ExpectCommit()
}
