package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dsaccounts/internal/client/models"
)

// getStatus renders the prompt status: the current location followed by the
// signed-in email, if any.
func (a *App) getStatus(ctx context.Context) string {
	s := a.location.Current()
	if u, err := a.authService.CurrentUser(ctx); err == nil && u != nil {
		s = s + " " + u.Email
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to dsaccounts (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

// WhoAmI prints the dashboard of the session account.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading session", "error", err)
		return err
	}
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "Account type: %s\n", u.AccountType)
	fmt.Fprintf(a.out, "Member since: %s\n", u.CreatedAt.UTC().Format(models.CreatedAtLayout))

	fmt.Fprintln(a.out, "Profile:")
	for _, kv := range profileRows(u.Profile) {
		fmt.Fprintf(a.out, "  %s: %s\n", kv[0], kv[1])
	}

	fmt.Fprintln(a.out, "Verification files:")
	for _, slot := range u.AccountType.Slots() {
		fmt.Fprintf(a.out, "  %s: %s\n", slot, u.VerificationFiles[slot])
	}
	return nil
}

func profileRows(p models.Profile) [][2]string {
	switch p := p.(type) {
	case models.DriverProfile:
		return [][2]string{
			{"age", p.Age},
			{"experience", p.Experience},
			{"driverType", p.DriverType},
			{"serviceRecord", p.ServiceRecord},
			{"phone", p.Phone},
			{"preferredAreas", p.PreferredAreas},
			{"additionalInfo", p.AdditionalInfo},
		}
	case models.PartnerProfile:
		return [][2]string{
			{"name", p.Name},
			{"platforms", p.Platforms},
			{"phone", p.Phone},
			{"vehicleType", p.VehicleType},
			{"modelYear", p.ModelYear},
			{"carCondition", p.CarCondition},
			{"insuranceStatus", p.InsuranceStatus},
			{"preferredAreas", p.PreferredAreas},
		}
	}
	return nil
}
