package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/OpenRICA/permit-intake/internal/application/model"
)

// Notifier sends a best-effort notification about a submitted application.
// Implementations must not be relied on for the submission outcome: callers
// log failures and carry on.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// FormatSubmission renders a submitted application as the plain-text body of
// the notification email, one line per field.
func FormatSubmission(d *model.SubmitApplicationDTO) string {
	var b strings.Builder
	b.WriteString("A new application has been submitted:\n\n")
	writeLine(&b, "Citizenship", d.Citizenship)
	writeLine(&b, "Identification Number", stringOrEmpty(d.IdentificationNumber))
	writeLine(&b, "Passport Number", stringOrEmpty(d.PassportNumber))
	writeLine(&b, "Other Names", d.OtherNames)
	writeLine(&b, "Surname", d.Surname)
	writeLine(&b, "Nationality", d.Nationality)
	writeLine(&b, "Phone Number", stringOrEmpty(d.PhoneNumber))
	writeLine(&b, "Email", stringOrEmpty(d.Email))
	writeLine(&b, "Business Type", d.BusinessType)
	writeLine(&b, "Company Name", d.CompanyName)
	writeLine(&b, "TIN Number", d.TinNumber)
	writeLine(&b, "Registration Date", d.RegistrationDate)
	writeLine(&b, "Purpose of Importation", d.PurposeOfImportation)
	writeLine(&b, "Product Category", d.ProductCategory)
	writeLine(&b, "Product Name", d.ProductName)
	writeLine(&b, "Weight (kg)", floatOrEmpty(d.WeightKg))
	writeLine(&b, "Description", d.Description)
	writeLine(&b, "Unit of Measurement", d.UnitOfMeasurement)
	writeLine(&b, "Quantity", fmt.Sprintf("%d", d.Quantity))
	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%g", *f)
}
