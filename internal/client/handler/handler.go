// Package handler dispatches submitted forms to the authentication service
// and drives the resulting message and navigation.
package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dsaccounts/internal/client/forms"
	"github.com/dmitrijs2005/dsaccounts/internal/client/services"
	"github.com/dmitrijs2005/dsaccounts/internal/client/ui"
	"github.com/dmitrijs2005/dsaccounts/internal/logging"
)

const (
	SignUpSuccessText = "Account created. Redirecting..."
	SignInSuccessText = "Signed in. Redirecting..."
)

var ErrUnknownForm = errors.New("unknown form")

type Options struct {
	LandingPage         string
	SignUpRedirectDelay time.Duration
	SignInRedirectDelay time.Duration
}

type Handler struct {
	auth   services.AuthService
	nav    ui.Navigator
	signUp *ui.Message
	signIn *ui.Message
	opts   Options
	log    logging.Logger
}

func New(auth services.AuthService, nav ui.Navigator, signUp, signIn *ui.Message, opts Options, log logging.Logger) *Handler {
	return &Handler{
		auth:   auth,
		nav:    nav,
		signUp: signUp,
		signIn: signIn,
		opts:   opts,
		log:    log,
	}
}

// Submit runs the flow of the form identified by f.ID. The error that ended
// the flow, if any, has already been shown in the form's message region and
// is returned for the caller's information. On success Submit blocks for the
// redirect delay and then navigates to the landing page.
func (h *Handler) Submit(ctx context.Context, f forms.Form) error {
	switch f.ID {
	case forms.SignUpFormID:
		return h.submitSignUp(ctx, f)
	case forms.SignInFormID:
		return h.submitSignIn(ctx, f)
	}
	return fmt.Errorf("%w: %q", ErrUnknownForm, f.ID)
}

func (h *Handler) submitSignUp(ctx context.Context, f forms.Form) error {
	if _, err := h.auth.Register(ctx, forms.ParseRegistration(f)); err != nil {
		h.signUp.Show(err.Error(), ui.KindError)
		return err
	}

	h.signUp.Show(SignUpSuccessText, ui.KindSuccess)
	return h.redirect(ctx, h.opts.SignUpRedirectDelay)
}

func (h *Handler) submitSignIn(ctx context.Context, f forms.Form) error {
	if _, err := h.auth.SignIn(ctx, forms.ParseCredentials(f)); err != nil {
		h.signIn.Show(err.Error(), ui.KindError)
		return err
	}

	h.signIn.Show(SignInSuccessText, ui.KindSuccess)
	return h.redirect(ctx, h.opts.SignInRedirectDelay)
}

func (h *Handler) redirect(ctx context.Context, delay time.Duration) error {
	if err := sleep(ctx, delay); err != nil {
		h.log.Warn(ctx, "redirect cancelled", "to", h.opts.LandingPage, "error", err)
		return err
	}
	return h.nav.Navigate(ctx, h.opts.LandingPage)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
