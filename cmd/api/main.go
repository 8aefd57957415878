package main

import (
	_ "evosystem/docs"
	"evosystem/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EvoSystem Maintenance API
// @version         1.0
// @description     Service-order tracking (manutenção) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
