package forms

// Form identifiers.
const (
	SignUpFormID = "signup-form"
	SignInFormID = "signin-form"
)

// Message regions the handler writes to.
const (
	SignUpMessageID = "signup-message"
	SignInMessageID = "signin-message"
)

// Sign-up fields.
const (
	FieldSignUpName            = "signup-name"
	FieldSignUpEmail           = "signup-email"
	FieldSignUpPassword        = "signup-password"
	FieldSignUpPasswordConfirm = "signup-password-confirm"
	FieldAccountType           = "account-type"
)

// Driver profile fields.
const (
	FieldDriverAge        = "driver-age"
	FieldDriverExperience = "driver-experience"
	FieldDriverType       = "driver-type"
	FieldServiceRecord    = "service-record"
	FieldDriverPhone      = "driver-phone"
	FieldPreferredAreas   = "preferred-areas"
	FieldAdditionalInfo   = "additional-info"
)

// Driver file inputs.
const (
	FileID            = "id-file"
	FileLicense       = "license-file"
	FileGoodConduct   = "goodconduct-file"
	FilePassportPhoto = "passport-photo"
)

// Partner profile fields.
const (
	FieldPartnerName           = "partner-name"
	FieldPartnerPlatforms      = "partner-platforms"
	FieldPartnerPhone          = "partner-phone"
	FieldVehicleType           = "vehicle-type"
	FieldModelYear             = "model-year"
	FieldCarCondition          = "car-condition"
	FieldInsuranceStatus       = "insurance-status"
	FieldPartnerPreferredAreas = "partner-preferred-areas"
)

// Partner file inputs.
const (
	FilePartnerID            = "partner-id-file"
	FileCarPictures          = "car-pictures"
	FilePartnerPassportPhoto = "partner-passport-photo"
)

// Sign-in fields.
const (
	FieldSignInEmail    = "signin-email"
	FieldSignInPassword = "signin-password"
)

// Field describes one text input shown to the user.
type Field struct {
	ID    string
	Label string
}

var DriverFields = []Field{
	{FieldDriverAge, "Age"},
	{FieldDriverExperience, "Driving experience"},
	{FieldDriverType, "Driver type"},
	{FieldServiceRecord, "Service record"},
	{FieldDriverPhone, "Phone"},
	{FieldPreferredAreas, "Preferred areas"},
	{FieldAdditionalInfo, "Additional info"},
}

var DriverFiles = []Field{
	{FileID, "ID document"},
	{FileLicense, "Driving license"},
	{FileGoodConduct, "Certificate of good conduct"},
	{FilePassportPhoto, "Passport photo"},
}

var PartnerFields = []Field{
	{FieldPartnerName, "Partner name"},
	{FieldPartnerPlatforms, "Platforms"},
	{FieldPartnerPhone, "Phone"},
	{FieldVehicleType, "Vehicle type"},
	{FieldModelYear, "Model year"},
	{FieldCarCondition, "Car condition"},
	{FieldInsuranceStatus, "Insurance status"},
	{FieldPartnerPreferredAreas, "Preferred areas"},
}

var PartnerFiles = []Field{
	{FilePartnerID, "ID document"},
	{FileCarPictures, "Car pictures"},
	{FilePartnerPassportPhoto, "Passport photo"},
}
