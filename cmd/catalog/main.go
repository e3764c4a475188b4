// Package main is the entry point for the catalog API server.
//
// @title Product Catalog API
// @version 1.0
// @description Versioned CRUD API for the product catalog. Select the API version with the X-API-VERSION header (1.0 or 2.0).
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
package main

import "github.com/yourorg/catalog/cmd/catalog/cmd"

func main() {
	cmd.Execute()
}
