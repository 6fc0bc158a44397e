package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/ks-server/internal/adapter"
	"github.com/MKhiriev/ks-server/internal/config"
	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("ks-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.SetLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion()).Send()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err = run(context.Background(), serverAdapter, cfg.ProjectName, os.Stdout); err != nil {
		log.Error().Err(err).Str("project", cfg.ProjectName).Msg("project check failed")
		os.Exit(1)
	}
}

// run asks the server about name and prints "<name>: <outcome>" to out.
func run(ctx context.Context, serverAdapter adapter.ServerAdapter, name string, out io.Writer) error {
	outcome, err := serverAdapter.CheckProject(ctx, name)
	if err != nil {
		return fmt.Errorf("check project %q: %w", name, err)
	}

	_, err = fmt.Fprintf(out, "%s: %s\n", name, outcome)
	return err
}
