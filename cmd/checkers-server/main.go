// checkers-server answers legal-move queries over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

var (
	addr    = flag.String("addr", ":8080", "Address to listen on")
	origins = flag.String("origins", "*", "Comma-separated CORS origins")
	quiet   = flag.Bool("q", false, "Disable the access log")
)

func main() {
	flag.Parse()

	cfg := config.NewServerConfig()
	cfg.Addr = *addr
	cfg.AllowOrigins = *origins
	cfg.AccessLog = !*quiet
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	app := httpapi.New(cfg, os.Stderr)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("%s listening on %s", httpapi.AppName, cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
