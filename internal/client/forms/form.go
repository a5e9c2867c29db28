// Package forms turns submitted form data into the request objects consumed
// by the authentication service.
package forms

import (
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/dsaccounts/internal/client/models"
)

// MaxFilesPerSlot bounds how many file names a single file input records.
const MaxFilesPerSlot = 5

// Form is one submitted form. Values holds text inputs by field ID and Files
// holds the selected file paths of each file input.
type Form struct {
	ID     string
	Values map[string]string
	Files  map[string][]string
}

// Value returns the raw value of a text input, or "" when it is absent.
func (f Form) Value(id string) string {
	return f.Values[id]
}

func (f Form) trimmed(id string) string {
	return strings.TrimSpace(f.Values[id])
}

// FileNames returns the base names of at most MaxFilesPerSlot files selected
// in input id, joined with ", ".
func (f Form) FileNames(id string) string {
	files := f.Files[id]
	if len(files) > MaxFilesPerSlot {
		files = files[:MaxFilesPerSlot]
	}
	names := make([]string, 0, len(files))
	for _, p := range files {
		names = append(names, baseName(p))
	}
	return strings.Join(names, ", ")
}

func baseName(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Base(p)
}

// ParseRegistration reads a sign-up form. Name and email are trimmed (email
// normalization is left to the service); passwords are taken verbatim. Only
// the fields of the selected account type are read.
func ParseRegistration(f Form) models.Registration {
	accountType := models.ParseAccountType(f.Value(FieldAccountType))

	reg := models.Registration{
		Name:            f.trimmed(FieldSignUpName),
		Email:           f.trimmed(FieldSignUpEmail),
		Password:        f.Value(FieldSignUpPassword),
		PasswordConfirm: f.Value(FieldSignUpPasswordConfirm),
		AccountType:     accountType,
	}

	switch accountType {
	case models.AccountTypeDriver:
		reg.Profile = models.DriverProfile{
			Age:            f.trimmed(FieldDriverAge),
			Experience:     f.trimmed(FieldDriverExperience),
			DriverType:     f.trimmed(FieldDriverType),
			ServiceRecord:  f.trimmed(FieldServiceRecord),
			Phone:          f.trimmed(FieldDriverPhone),
			PreferredAreas: f.trimmed(FieldPreferredAreas),
			AdditionalInfo: f.trimmed(FieldAdditionalInfo),
		}
		reg.VerificationFiles = models.VerificationFiles{
			models.SlotIDFile:          f.FileNames(FileID),
			models.SlotLicenseFile:     f.FileNames(FileLicense),
			models.SlotGoodConductFile: f.FileNames(FileGoodConduct),
			models.SlotPassportPhoto:   f.FileNames(FilePassportPhoto),
		}
	default:
		reg.Profile = models.PartnerProfile{
			Name:            f.trimmed(FieldPartnerName),
			Platforms:       f.trimmed(FieldPartnerPlatforms),
			Phone:           f.trimmed(FieldPartnerPhone),
			VehicleType:     f.trimmed(FieldVehicleType),
			ModelYear:       f.trimmed(FieldModelYear),
			CarCondition:    f.trimmed(FieldCarCondition),
			InsuranceStatus: f.trimmed(FieldInsuranceStatus),
			PreferredAreas:  f.trimmed(FieldPartnerPreferredAreas),
		}
		reg.VerificationFiles = models.VerificationFiles{
			models.SlotIDFile:        f.FileNames(FilePartnerID),
			models.SlotCarPictures:   f.FileNames(FileCarPictures),
			models.SlotPassportPhoto: f.FileNames(FilePartnerPassportPhoto),
		}
	}

	return reg
}

// ParseCredentials reads a sign-in form.
func ParseCredentials(f Form) models.Credentials {
	return models.Credentials{
		Email:    f.trimmed(FieldSignInEmail),
		Password: f.Value(FieldSignInPassword),
	}
}
