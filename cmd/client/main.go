// Command client is a small command-line client for the clinic API.
//
//	client [-addr host:port] [-token JWT] login <usuario> <senha>
//	client create '{"nome":"Ana"}'
//	client list
//	client get <id>
//	client update <id> '{"telefone":"..."}'
//	client delete <id>
//
// The token can also be passed through CLINIC_TOKEN.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-clinic/internal/adapter"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [-addr host:port] [-token JWT] login|create|list|get|update|delete [args]")

func main() {
	log := logger.NewLogger("clinic-client", "warn")
	log.Debug().Str("version", buildVersion).Str("date", buildDate).Str("commit", buildCommit).Send()

	if err := run(context.Background(), os.Args[1:], os.Stdout, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	addr := fs.String("addr", envOr("CLINIC_ADDR", "localhost:3000"), "clinic API address")
	token := fs.String("token", os.Getenv("CLINIC_TOKEN"), "session token for protected commands")
	timeout := fs.Duration("timeout", 15*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	api, err := adapter.NewHTTPClinicAdapter(*addr, *timeout, log)
	if err != nil {
		return err
	}
	api.SetToken(*token)

	command, params := rest[0], rest[1:]
	switch command {
	case "login":
		if len(params) != 2 {
			return errUsage
		}
		tok, err := api.Login(ctx, models.Credentials{Username: params[0], Password: params[1]})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, tok)
		return err

	case "create":
		if len(params) != 1 {
			return errUsage
		}
		profile, err := models.DecodeProfile(strings.NewReader(params[0]))
		if err != nil {
			return fmt.Errorf("invalid patient JSON: %w", err)
		}
		patient, err := api.CreatePatient(ctx, profile)
		if err != nil {
			return err
		}
		return printJSON(out, patient)

	case "list":
		patients, err := api.ListPatients(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, patients)

	case "get":
		id, err := parseID(params)
		if err != nil {
			return err
		}
		patient, err := api.GetPatient(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out, patient)

	case "update":
		if len(params) != 2 {
			return errUsage
		}
		id, err := parseID(params[:1])
		if err != nil {
			return err
		}
		partial, err := models.DecodeProfile(strings.NewReader(params[1]))
		if err != nil {
			return fmt.Errorf("invalid patient JSON: %w", err)
		}
		patient, err := api.UpdatePatient(ctx, id, partial)
		if err != nil {
			return err
		}
		return printJSON(out, patient)

	case "delete":
		id, err := parseID(params)
		if err != nil {
			return err
		}
		return api.DeletePatient(ctx, id)

	default:
		return errUsage
	}
}

func parseID(params []string) (int64, error) {
	if len(params) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(params[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid patient id %q: %w", params[0], err)
	}
	return id, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
