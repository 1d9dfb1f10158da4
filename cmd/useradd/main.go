// Command useradd provisions a clinic staff account.
//
//	useradd [-d DSN] [-c config.json] <usuario> <senha>
//
// The password is stored as a bcrypt hash. Database settings come from the
// same sources as the server (DATABASE_URL, .env, JSON file, flags).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-clinic/internal/config"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/service"
	"github.com/MKhiriev/go-clinic/internal/store"
	"github.com/MKhiriev/go-clinic/models"
)

var errUsage = errors.New("usage: useradd [flags] <usuario> <senha>")

func main() {
	log := logger.NewLogger("clinic-useradd", "info")

	if err := run(context.Background(), os.Args[1:], log); err != nil {
		log.Fatal().Err(err).Msg("user was not created")
	}
}

func run(ctx context.Context, args []string, log *logger.Logger) error {
	if len(args) < 2 {
		return errUsage
	}
	flagArgs, credentials := splitArgs(args)

	cfg, err := config.GetStorageConfig(flagArgs)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	auth := service.NewAuthService(store.NewUserRepository(db, log), cfg.App, log)
	user, err := auth.RegisterUser(ctx, credentials)
	if err != nil {
		return err
	}

	log.Info().Int64("id", user.UserID).Str("usuario", user.Username).Msg("user created")
	return nil
}

// splitArgs treats the last two arguments as usuario and senha.
func splitArgs(args []string) ([]string, models.Credentials) {
	n := len(args)
	return args[:n-2], models.Credentials{Username: args[n-2], Password: args[n-1]}
}
