package model

// SubmitApplicationDTO is the submission payload posted by the intake form.
// Optional fields are pointers so that "absent" and "empty" stay distinct;
// the service treats a missing optional field as NULL, not as an error.
type SubmitApplicationDTO struct {
	Citizenship          string   `json:"citizenship"`
	IdentificationNumber *string  `json:"identification_number,omitempty"` // Present for Rwandan applicants
	PassportNumber       *string  `json:"passport_number,omitempty"`       // Present for foreign applicants
	OtherNames           string   `json:"other_names"`
	Surname              string   `json:"surname"`
	Nationality          string   `json:"nationality"`
	PhoneNumber          *string  `json:"phone_number,omitempty"`
	Email                *string  `json:"email,omitempty"`
	BusinessType         string   `json:"business_type"`
	CompanyName          string   `json:"company_name"`
	TinNumber            string   `json:"tin_number"`
	RegistrationDate     string   `json:"registration_date"` // Canonical form: YYYY-MM-DD
	PurposeOfImportation string   `json:"purpose_of_importation"`
	ProductCategory      string   `json:"product_category"`
	ProductName          string   `json:"product_name"`
	WeightKg             *float64 `json:"weight_kg,omitempty"`
	Description          string   `json:"description"`
	UnitOfMeasurement    string   `json:"unit_of_measurement"`
	Quantity             int      `json:"quantity"`
}

// ToRecord maps the payload onto a new ApplicationRecord. Required fields are
// copied verbatim; optional fields stay NULL when absent.
func (d *SubmitApplicationDTO) ToRecord() *ApplicationRecord {
	return &ApplicationRecord{
		Citizenship:          d.Citizenship,
		IdentificationNumber: d.IdentificationNumber,
		PassportNumber:       d.PassportNumber,
		OtherNames:           d.OtherNames,
		Surname:              d.Surname,
		Nationality:          d.Nationality,
		PhoneNumber:          d.PhoneNumber,
		Email:                d.Email,
		BusinessType:         d.BusinessType,
		CompanyName:          d.CompanyName,
		TinNumber:            d.TinNumber,
		RegistrationDate:     d.RegistrationDate,
		PurposeOfImportation: d.PurposeOfImportation,
		ProductCategory:      d.ProductCategory,
		ProductName:          d.ProductName,
		WeightKg:             d.WeightKg,
		Description:          d.Description,
		UnitOfMeasurement:    d.UnitOfMeasurement,
		Quantity:             d.Quantity,
	}
}
