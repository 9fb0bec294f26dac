package model

// Citizenship represents the applicant's citizenship choice on the form.
type Citizenship string

const (
	CitizenshipRwandan   Citizenship = "Rwandan"
	CitizenshipForeigner Citizenship = "Foreigner"
)

// BusinessType represents the type of the applicant's business.
type BusinessType string

const (
	BusinessTypeRetailer     BusinessType = "Retailer"
	BusinessTypeWholesale    BusinessType = "Wholesale"
	BusinessTypeManufacturer BusinessType = "Manufacturer"
)

// ImportationPurpose represents why the products are being imported.
type ImportationPurpose string

const (
	PurposeDirectSale  ImportationPurpose = "Direct sale"
	PurposePersonalUse ImportationPurpose = "Personal use"
	PurposeTrialUse    ImportationPurpose = "Trial use"
	PurposeOther       ImportationPurpose = "Other"
)

// ProductCategory represents the category of the imported products.
type ProductCategory string

const (
	CategoryGeneralPurpose        ProductCategory = "General purpose"
	CategoryConstructionMaterials ProductCategory = "Construction materials"
	CategoryChemicals             ProductCategory = "Chemicals"
)

// MeasurementUnit represents the unit the product quantity is measured in.
type MeasurementUnit string

const (
	UnitKgs    MeasurementUnit = "Kgs"
	UnitTonnes MeasurementUnit = "Tonnes"
)

// ApplicationRecord is one submitted import permit application as persisted.
// Records are insert-only: there are no update or delete operations.
type ApplicationRecord struct {
	ID                   uint     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Citizenship          string   `gorm:"type:varchar(50);column:citizenship;not null" json:"citizenship"`
	IdentificationNumber *string  `gorm:"type:varchar(50);column:identification_number" json:"identification_number,omitempty"`
	PassportNumber       *string  `gorm:"type:varchar(50);column:passport_number" json:"passport_number,omitempty"`
	OtherNames           string   `gorm:"type:varchar(100);column:other_names;not null" json:"other_names"`
	Surname              string   `gorm:"type:varchar(100);column:surname;not null" json:"surname"`
	Nationality          string   `gorm:"type:varchar(100);column:nationality;not null" json:"nationality"`
	PhoneNumber          *string  `gorm:"type:varchar(20);column:phone_number" json:"phone_number,omitempty"`
	Email                *string  `gorm:"type:varchar(100);column:email" json:"email,omitempty"`
	BusinessType         string   `gorm:"type:varchar(50);column:business_type;not null" json:"business_type"`
	CompanyName          string   `gorm:"type:varchar(100);column:company_name;not null" json:"company_name"`
	TinNumber            string   `gorm:"type:varchar(20);column:tin_number;not null" json:"tin_number"`
	RegistrationDate     string   `gorm:"type:varchar(20);column:registration_date;not null" json:"registration_date"`
	PurposeOfImportation string   `gorm:"type:varchar(100);column:purpose_of_importation;not null" json:"purpose_of_importation"`
	ProductCategory      string   `gorm:"type:varchar(100);column:product_category;not null" json:"product_category"`
	ProductName          string   `gorm:"type:varchar(100);column:product_name;not null" json:"product_name"`
	WeightKg             *float64 `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	Description          string   `gorm:"type:text;column:description;not null" json:"description"`
	UnitOfMeasurement    string   `gorm:"type:varchar(20);column:unit_of_measurement;not null" json:"unit_of_measurement"`
	Quantity             int      `gorm:"column:quantity;not null" json:"quantity"`
}

func (a *ApplicationRecord) TableName() string {
	return "applications"
}
