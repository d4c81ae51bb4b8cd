package main

import (
	_ "construtora_api/docs"
	"construtora_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Construtora API
// @version         1.0
// @description     Back-office API for a construction business (works, clients, team, finance, budget presets) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
