package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/dsaccounts/internal/client/forms"
	"github.com/dmitrijs2005/dsaccounts/internal/client/models"
	"github.com/dmitrijs2005/dsaccounts/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp walks the user through the sign-up form and submits it.
//
// The category-specific questions depend on the account type answer: drivers
// and partners are asked different profile fields and file inputs. Validation
// happens only on submit, so an invalid answer is reported after all
// questions. On success the dashboard is printed.
func (a *App) SignUp(ctx context.Context) error {
	f := forms.Form{
		ID:     forms.SignUpFormID,
		Values: map[string]string{},
		Files:  map[string][]string{},
	}

	if err := a.ask(&f, forms.FieldSignUpName, "Enter full name"); err != nil {
		return err
	}
	if err := a.ask(&f, forms.FieldSignUpEmail, "Enter email"); err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	f.Values[forms.FieldSignUpPassword] = string(password)
	common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	f.Values[forms.FieldSignUpPasswordConfirm] = string(confirm)
	common.WipeByteArray(confirm)

	accountType, err := getSimpleText(a.reader, "Account type (driver/partner) [driver]", a.out)
	if err != nil {
		return err
	}
	accountType = strings.ToLower(accountType)
	f.Values[forms.FieldAccountType] = accountType

	fields, files := forms.DriverFields, forms.DriverFiles
	if models.ParseAccountType(accountType) == models.AccountTypePartner {
		fields, files = forms.PartnerFields, forms.PartnerFiles
	}

	for _, field := range fields {
		if err := a.ask(&f, field.ID, field.Label+" (optional)"); err != nil {
			return err
		}
	}
	for _, input := range files {
		paths, err := getSimpleText(a.reader, input.Label+": file paths separated by commas (optional)", a.out)
		if err != nil {
			return err
		}
		f.Files[input.ID] = splitList(paths)
	}

	if err := a.handler.Submit(ctx, f); err != nil {
		return err
	}
	return a.WhoAmI(ctx)
}

// SignIn prompts for credentials, submits the sign-in form and prints the
// dashboard on success.
func (a *App) SignIn(ctx context.Context) error {
	f := forms.Form{ID: forms.SignInFormID, Values: map[string]string{}}

	if err := a.ask(&f, forms.FieldSignInEmail, "Enter email"); err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	f.Values[forms.FieldSignInPassword] = string(password)
	common.WipeByteArray(password)

	if err := a.handler.Submit(ctx, f); err != nil {
		return err
	}
	return a.WhoAmI(ctx)
}

func (a *App) ask(f *forms.Form, id, prompt string) error {
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	f.Values[id] = v
	return nil
}
