// Package models defines the account records persisted by the client and the
// request objects the registration and sign-in flows consume.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AccountType selects which profile shape an account carries.
type AccountType string

const (
	AccountTypeDriver  AccountType = "driver"
	AccountTypePartner AccountType = "partner"
)

// ParseAccountType maps a selector value to an AccountType. An empty value
// means driver; any value other than "driver" means partner.
func ParseAccountType(s string) AccountType {
	if s == "" || s == string(AccountTypeDriver) {
		return AccountTypeDriver
	}
	return AccountTypePartner
}

// Verification file slots. Drivers use IDFile, LicenseFile, GoodConductFile
// and PassportPhoto; partners use IDFile, CarPictures and PassportPhoto.
const (
	SlotIDFile          = "idFile"
	SlotLicenseFile     = "licenseFile"
	SlotGoodConductFile = "goodConductFile"
	SlotPassportPhoto   = "passportPhoto"
	SlotCarPictures     = "carPictures"
)

// Slots lists the verification file slots of an account type in display order.
func (t AccountType) Slots() []string {
	if t == AccountTypeDriver {
		return []string{SlotIDFile, SlotLicenseFile, SlotGoodConductFile, SlotPassportPhoto}
	}
	return []string{SlotIDFile, SlotCarPictures, SlotPassportPhoto}
}

// VerificationFiles maps a slot to a ", "-joined list of file names.
type VerificationFiles map[string]string

// Profile is the category-specific part of an account. Exactly one
// implementation exists per AccountType.
type Profile interface {
	AccountType() AccountType
}

type DriverProfile struct {
	Age            string `json:"age"`
	Experience     string `json:"experience"`
	DriverType     string `json:"driverType"`
	ServiceRecord  string `json:"serviceRecord"`
	Phone          string `json:"phone"`
	PreferredAreas string `json:"preferredAreas"`
	AdditionalInfo string `json:"additionalInfo"`
}

func (DriverProfile) AccountType() AccountType { return AccountTypeDriver }

type PartnerProfile struct {
	Name            string `json:"name"`
	Platforms       string `json:"platforms"`
	Phone           string `json:"phone"`
	VehicleType     string `json:"vehicleType"`
	ModelYear       string `json:"modelYear"`
	CarCondition    string `json:"carCondition"`
	InsuranceStatus string `json:"insuranceStatus"`
	PreferredAreas  string `json:"preferredAreas"`
}

func (PartnerProfile) AccountType() AccountType { return AccountTypePartner }

// CreatedAtLayout renders timestamps in UTC with millisecond precision,
// e.g. 2024-05-01T10:20:30.000Z.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Account is one registered user, keyed by Email in the account store.
type Account struct {
	Name              string
	Email             string
	AccountType       AccountType
	PasswordHash      string
	CreatedAt         time.Time
	Profile           Profile
	VerificationFiles VerificationFiles
}

type accountJSON struct {
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	AccountType       AccountType       `json:"accountType"`
	PasswordHash      string            `json:"passwordHash"`
	CreatedAt         string            `json:"createdAt"`
	Profile           json.RawMessage   `json:"profile"`
	VerificationFiles VerificationFiles `json:"verificationFiles"`
}

func (a Account) MarshalJSON() ([]byte, error) {
	profile := json.RawMessage("null")
	if a.Profile != nil {
		b, err := json.Marshal(a.Profile)
		if err != nil {
			return nil, err
		}
		profile = b
	}

	files := a.VerificationFiles
	if files == nil {
		files = VerificationFiles{}
	}

	return json.Marshal(accountJSON{
		Name:              a.Name,
		Email:             a.Email,
		AccountType:       a.AccountType,
		PasswordHash:      a.PasswordHash,
		CreatedAt:         a.CreatedAt.UTC().Format(CreatedAtLayout),
		Profile:           profile,
		VerificationFiles: files,
	})
}

// UnmarshalJSON decodes the profile according to accountType; the stored
// profile object never decides its own shape.
func (a *Account) UnmarshalJSON(data []byte) error {
	var raw accountJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var createdAt time.Time
	if raw.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, raw.CreatedAt)
		if err != nil {
			return fmt.Errorf("invalid createdAt %q: %w", raw.CreatedAt, err)
		}
		createdAt = t.UTC()
	}

	profile, err := decodeProfile(raw.AccountType, raw.Profile)
	if err != nil {
		return err
	}

	*a = Account{
		Name:              raw.Name,
		Email:             raw.Email,
		AccountType:       raw.AccountType,
		PasswordHash:      raw.PasswordHash,
		CreatedAt:         createdAt,
		Profile:           profile,
		VerificationFiles: raw.VerificationFiles,
	}
	return nil
}

func decodeProfile(t AccountType, data json.RawMessage) (Profile, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	switch ParseAccountType(string(t)) {
	case AccountTypeDriver:
		var p DriverProfile
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("invalid driver profile: %w", err)
		}
		return p, nil
	default:
		var p PartnerProfile
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("invalid partner profile: %w", err)
		}
		return p, nil
	}
}

// Registration is a parsed sign-up form. Profile must match AccountType.
type Registration struct {
	Name              string
	Email             string
	Password          string
	PasswordConfirm   string
	AccountType       AccountType
	Profile           Profile
	VerificationFiles VerificationFiles
}

// Credentials is a parsed sign-in form.
type Credentials struct {
	Email    string
	Password string
}
