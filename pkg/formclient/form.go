// Package formclient implements the import permit intake form: conditional
// field handling, local completeness checks, payload assembly and submission
// to the intake service. Field state lives in memory and survives failed
// submissions so the applicant can retry without retyping.
package formclient

import (
	"time"

	"github.com/OpenRICA/permit-intake/internal/application/model"
)

// Fields holds the raw editing-time state of the intake form. The address
// fields and the specify-purpose text are required locally but are not part
// of the submission payload.
type Fields struct {
	Citizenship          string
	IdentificationNumber string
	PassportNumber       string
	OtherNames           string
	Surname              string
	Nationality          string
	PhoneNumber          string
	Email                string
	BusinessOwnerAddress string
	BusinessType         string
	CompanyName          string
	TinNumber            string
	RegistrationDate     time.Time
	BusinessAddress      string
	PurposeOfImportation string
	SpecifyPurpose       string
	ProductCategory      string
	ProductName          string
	WeightKg             float64
	UnitOfMeasurement    string
	Quantity             int
	Description          string
}

// IdentityField returns the payload name and value of the identity document
// field visible for the current citizenship. Exactly one of the two identity
// fields is ever active; the other is treated as absent.
func (f *Fields) IdentityField() (name, value string) {
	if f.Citizenship == string(model.CitizenshipRwandan) {
		return "identification_number", f.IdentificationNumber
	}
	return "passport_number", f.PassportNumber
}

// SpecifyPurposeRequired reports whether the free-text purpose field is
// visible and required.
func (f *Fields) SpecifyPurposeRequired() bool {
	return f.PurposeOfImportation == string(model.PurposeOther)
}

// ValidateLocally checks that every locally required field is filled in. It
// is a pure function over the current field values: it returns whether the
// form is complete and, for feedback, the names of the unsatisfied fields in
// form order. The specify-purpose field only counts when the purpose is
// Other.
func (f *Fields) ValidateLocally() (bool, []string) {
	_, identity := f.IdentityField()

	checks := []struct {
		name  string
		empty bool
	}{
		{"citizenship", f.Citizenship == ""},
		{"nid or passport", identity == ""},
		{"other_names", f.OtherNames == ""},
		{"surname", f.Surname == ""},
		{"nationality", f.Nationality == ""},
		{"business_owner_address", f.BusinessOwnerAddress == ""},
		{"business_type", f.BusinessType == ""},
		{"company_name", f.CompanyName == ""},
		{"tin_number", f.TinNumber == ""},
		{"registration_date", f.RegistrationDate.IsZero()},
		{"business_address", f.BusinessAddress == ""},
		{"purpose_of_importation", f.PurposeOfImportation == ""},
		{"specify_purpose", f.SpecifyPurposeRequired() && f.SpecifyPurpose == ""},
		{"product_category", f.ProductCategory == ""},
		{"product_name", f.ProductName == ""},
		{"unit_of_measurement", f.UnitOfMeasurement == ""},
		{"quantity", f.Quantity == 0},
		{"description", f.Description == ""},
	}

	var missing []string
	for _, check := range checks {
		if check.empty {
			missing = append(missing, check.name)
		}
	}
	return len(missing) == 0, missing
}

// BuildPayload maps the editing-time fields onto the submission payload.
// The identity field of the inactive citizenship branch is absent, not
// empty. The registration date is normalized to YYYY-MM-DD. Address fields
// and the specify-purpose text are intentionally not transmitted.
func (f *Fields) BuildPayload() *model.SubmitApplicationDTO {
	payload := &model.SubmitApplicationDTO{
		Citizenship:          f.Citizenship,
		OtherNames:           f.OtherNames,
		Surname:              f.Surname,
		Nationality:          f.Nationality,
		PhoneNumber:          &f.PhoneNumber,
		Email:                &f.Email,
		BusinessType:         f.BusinessType,
		CompanyName:          f.CompanyName,
		TinNumber:            f.TinNumber,
		RegistrationDate:     f.RegistrationDate.Format("2006-01-02"),
		PurposeOfImportation: f.PurposeOfImportation,
		ProductCategory:      f.ProductCategory,
		ProductName:          f.ProductName,
		WeightKg:             &f.WeightKg,
		UnitOfMeasurement:    f.UnitOfMeasurement,
		Quantity:             f.Quantity,
		Description:          f.Description,
	}

	if f.Citizenship == string(model.CitizenshipRwandan) {
		payload.IdentificationNumber = &f.IdentificationNumber
	} else {
		payload.PassportNumber = &f.PassportNumber
	}

	return payload
}
