// Command cruddals-demo serves the generated task schema over HTTP.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/cruddals/cruddals"
	"github.com/cruddals/cruddals/demo"
	"github.com/cruddals/cruddals/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dsn := flag.String("dsn", "tasks.db", `SQLite DSN (":memory:" for ephemeral)`)
	dev := flag.Bool("dev", false, "pretty-print logs and serve GraphiQL")
	jwtSecret := flag.String("jwt-secret", "", "enable bearer auth with this HMAC secret")
	flag.Parse()

	logger := logging.ProdLogger
	if *dev {
		logger = logging.DevLogger
	}

	store, err := demo.Open(*dsn)
	if err != nil {
		fatal(logger, "opening store", err)
	}
	defer store.Close()

	ms, err := demo.NewTaskSchema(store, cruddals.SchemaOptions{})
	if err != nil {
		fatal(logger, "building schema", err)
	}

	server := demo.NewServer(demo.ServerConfig{
		Schema:    ms.Schema,
		Logger:    logger,
		JWTSecret: *jwtSecret,
		GraphiQL:  *dev,
	})

	logger.Info("listening", "addr", *addr, "operations", len(ms.Operations))
	if err := http.ListenAndServe(*addr, server); err != nil {
		fatal(logger, "serving", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
