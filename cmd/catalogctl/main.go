// Package main is a console client for the catalog API: it discovers
// the identity service's token endpoint, obtains an access token via
// the client-credentials grant, and lists the catalog.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourorg/catalog/internal/identity"
	"github.com/yourorg/catalog/internal/version"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	issuerURL    string
	apiURL       string
	clientID     string
	clientSecret string
	scope        string
	apiVersion   string
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Console client for the catalog API",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&issuerURL, "issuer", "http://localhost:5001", "Identity service base URL")
	rootCmd.Flags().StringVar(&apiURL, "api", "http://localhost:8080", "Catalog API base URL")
	rootCmd.Flags().StringVar(&clientID, "client-id", "client", "OAuth2 client ID")
	rootCmd.Flags().StringVar(&clientSecret, "client-secret", "secret", "OAuth2 client secret")
	rootCmd.Flags().StringVar(&scope, "scope", identity.ScopeCatalogAPI, "Requested scope")
	rootCmd.Flags().StringVar(&apiVersion, "api-version", version.V1, "API version header value")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tokenEndpoint, err := discoverTokenEndpoint(ctx, issuerURL)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenEndpoint,
		Scopes:       []string{scope},
	}

	token, err := cc.Token(ctx)
	if err != nil {
		return fmt.Errorf("token request failed: %w", err)
	}
	fmt.Printf("Token: %s\n", token.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"/products", nil)
	if err != nil {
		return err
	}
	req.Header.Set(version.Header, apiVersion)

	resp, err := cc.Client(ctx).Do(req)
	if err != nil {
		return fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api returned %s: %s", resp.Status, body)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

func discoverTokenEndpoint(ctx context.Context, issuer string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, issuer+"/.well-known/openid-configuration", nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("discovery document returned %s", resp.Status)
	}

	var doc struct {
		TokenEndpoint string `json:"token_endpoint"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", err
	}
	if doc.TokenEndpoint == "" {
		return "", fmt.Errorf("discovery document has no token_endpoint")
	}
	return doc.TokenEndpoint, nil
}
