package service

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/OpenRICA/permit-intake/internal/application/model"
	"github.com/OpenRICA/permit-intake/internal/notify"
)

// requiredFields is the authoritative required-field list, checked in order.
// The first missing or empty field aborts the submission; later fields are
// not inspected. Emptiness mirrors the form contract: empty string for text
// fields, zero for quantity.
var requiredFields = []struct {
	name  string
	empty func(*model.SubmitApplicationDTO) bool
}{
	{"citizenship", func(d *model.SubmitApplicationDTO) bool { return d.Citizenship == "" }},
	{"other_names", func(d *model.SubmitApplicationDTO) bool { return d.OtherNames == "" }},
	{"surname", func(d *model.SubmitApplicationDTO) bool { return d.Surname == "" }},
	{"nationality", func(d *model.SubmitApplicationDTO) bool { return d.Nationality == "" }},
	{"business_type", func(d *model.SubmitApplicationDTO) bool { return d.BusinessType == "" }},
	{"company_name", func(d *model.SubmitApplicationDTO) bool { return d.CompanyName == "" }},
	{"tin_number", func(d *model.SubmitApplicationDTO) bool { return d.TinNumber == "" }},
	{"registration_date", func(d *model.SubmitApplicationDTO) bool { return d.RegistrationDate == "" }},
	{"purpose_of_importation", func(d *model.SubmitApplicationDTO) bool { return d.PurposeOfImportation == "" }},
	{"product_category", func(d *model.SubmitApplicationDTO) bool { return d.ProductCategory == "" }},
	{"product_name", func(d *model.SubmitApplicationDTO) bool { return d.ProductName == "" }},
	{"description", func(d *model.SubmitApplicationDTO) bool { return d.Description == "" }},
	{"unit_of_measurement", func(d *model.SubmitApplicationDTO) bool { return d.UnitOfMeasurement == "" }},
	{"quantity", func(d *model.SubmitApplicationDTO) bool { return d.Quantity == 0 }},
}

// IntakeService is the authoritative gatekeeper for application submissions.
// Nothing reaches storage without passing its validation, independent of any
// checks the form client already ran.
type IntakeService struct {
	db       *gorm.DB
	notifier notify.Notifier
	subject  string
}

// NewIntakeService creates an IntakeService with injected collaborators.
// notifier may be nil, in which case notifications are skipped entirely.
func NewIntakeService(db *gorm.DB, notifier notify.Notifier, subject string) *IntakeService {
	return &IntakeService{db: db, notifier: notifier, subject: subject}
}

// SubmitApplication validates the payload, persists one application record
// and triggers the notification email. Validation fails on the first missing
// required field. Persistence is a single atomic insert. Notification
// failures are logged and swallowed: the submission still succeeds.
func (s *IntakeService) SubmitApplication(ctx context.Context, payload *model.SubmitApplicationDTO) (*model.ApplicationRecord, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload cannot be nil")
	}

	for _, field := range requiredFields {
		if field.empty(payload) {
			return nil, &ValidationError{Field: field.name}
		}
	}

	record := payload.ToRecord()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to insert application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, s.subject, notify.FormatSubmission(payload)); err != nil {
			// Best effort only. The submission already succeeded.
			slog.ErrorContext(ctx, "failed to send application notification",
				"application_id", record.ID,
				"error", err,
			)
		}
	}

	return record, nil
}
