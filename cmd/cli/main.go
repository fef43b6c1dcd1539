package main

import (
	"context"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/libadmin/internal/buildinfo"
	"github.com/dmitrijs2005/libadmin/internal/client/cli"
	"github.com/dmitrijs2005/libadmin/internal/client/config"
	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/services"
	"github.com/dmitrijs2005/libadmin/internal/client/session"
	"github.com/dmitrijs2005/libadmin/internal/client/storage"
	"github.com/dmitrijs2005/libadmin/internal/logging"
	"golang.org/x/term"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, cfg.LogLevel)

	repos, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer repos.Close()

	creds := storage.NewCredentialStore(repos.Metadata)
	nav := cli.NewNavigator(cli.ScreenHome)

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatalf("cookie jar: %v", err)
	}
	opts := []gateway.Option{
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout, Jar: jar}),
		gateway.WithLogger(logger.With("component", "gateway")),
		gateway.WithProgress(cli.NewSpinner(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))),
		gateway.WithScreen(nav.Screen),
	}
	if cfg.CoalesceRefresh {
		opts = append(opts, gateway.WithCoalescedRefresh())
	}
	gw := gateway.New(cfg.BackendURL, creds, opts...)

	api := services.NewCatalog(gw)
	store := session.New(api.Auth, creds, logger.With("component", "session"))

	app := cli.NewApp(nav, store, api, creds, logger)
	app.Run(ctx)

}
