// Package main runs the token-issuing identity service the catalog
// API delegates authentication to.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/spf13/viper"
	"github.com/yourorg/catalog/internal/identity"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	viper.AutomaticEnv()

	logLevel := viper.GetString("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := viper.GetString("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}
	canonlog.SetupGlobalLogger(logLevel, logFormat)

	signingSecret := viper.GetString("TOKEN_SIGNING_SECRET")
	if signingSecret == "" {
		return fmt.Errorf("TOKEN_SIGNING_SECRET is required")
	}

	host := viper.GetString("HOST")
	if host == "" {
		host = "0.0.0.0"
	}
	port := viper.GetInt("PORT")
	if port == 0 {
		port = 5001
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	issuer := viper.GetString("ISSUER")
	if issuer == "" {
		issuer = fmt.Sprintf("http://localhost:%d", port)
	}

	cfg := identity.Config{
		Issuer:        issuer,
		SigningSecret: []byte(signingSecret),
		TokenTTL:      time.Hour,
		Clients:       clientRegistry(),
	}

	srv := &http.Server{
		Addr:           addr,
		Handler:        identity.NewServer(cfg).Routes(),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	go func() {
		fmt.Printf("Identity service starting on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down identity service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// clientRegistry builds the client list from CLIENT_ID/CLIENT_SECRET,
// falling back to the development client.
func clientRegistry() []identity.Client {
	clientID := viper.GetString("CLIENT_ID")
	if clientID == "" {
		return identity.DefaultClients()
	}

	scopes := strings.Fields(viper.GetString("CLIENT_SCOPES"))
	if len(scopes) == 0 {
		scopes = []string{identity.ScopeCatalogAPI}
	}

	return []identity.Client{{
		ID:            clientID,
		Secret:        viper.GetString("CLIENT_SECRET"),
		AllowedScopes: scopes,
	}}
}
