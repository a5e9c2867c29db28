package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/dsaccounts/internal/client/config"
	"github.com/dmitrijs2005/dsaccounts/internal/client/forms"
	"github.com/dmitrijs2005/dsaccounts/internal/client/handler"
	"github.com/dmitrijs2005/dsaccounts/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/dsaccounts/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/dsaccounts/internal/client/services"
	"github.com/dmitrijs2005/dsaccounts/internal/client/storage"
	"github.com/dmitrijs2005/dsaccounts/internal/client/ui"
	"github.com/dmitrijs2005/dsaccounts/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	handler     *handler.Handler
	location    *ui.Location
	signUpMsg   *ui.Message
	signInMsg   *ui.Message
	closer      io.Closer
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the configured store and builds an App reading from stdin and
// writing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, closer, err := storage.Open(ctx, c.StoreDriver, c.StorePath)
	if err != nil {
		log.Error(ctx, "error opening store", "driver", c.StoreDriver, "path", c.StorePath, "error", err)
		return nil, err
	}
	log.Info(ctx, "store opened", "driver", c.StoreDriver, "path", c.StorePath)

	return newApp(c, store, closer, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, store localstore.Repository, closer io.Closer, log logging.Logger, in io.Reader, out io.Writer) *App {
	as := services.NewAuthService(accounts.NewKVRepository(store, log), log)
	loc := ui.NewLocation(log)
	signUp := ui.NewMessage(forms.SignUpMessageID, c.MessageClearDelay)
	signIn := ui.NewMessage(forms.SignInMessageID, c.MessageClearDelay)

	a := &App{
		config:      c,
		authService: as,
		location:    loc,
		signUpMsg:   signUp,
		signInMsg:   signIn,
		closer:      closer,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
	}

	signUp.OnChange(a.renderMessage)
	signIn.OnChange(a.renderMessage)

	a.handler = handler.New(as, loc, signUp, signIn, handler.Options{
		LandingPage:         c.LandingPage,
		SignUpRedirectDelay: c.SignUpRedirectDelay,
		SignInRedirectDelay: c.SignInRedirectDelay,
	}, log)

	return a
}

// renderMessage prints non-empty messages; clearing a message prints nothing.
func (a *App) renderMessage(_ string, text, class string) {
	if text == "" {
		return
	}
	fmt.Fprintf(a.out, "[%s] %s\n", class, text)
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "error closing store", "error", err)
		}
	}()
	a.Root(ctx)
}

// Close stops pending message timers and releases the store.
func (a *App) Close() error {
	a.signUpMsg.Close()
	a.signInMsg.Close()
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
