package main

import (
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/newmeca/meca-server/internal/cli"
)

func main() {
	_ = godotenv.Load(".env")

	cli.Execute()
}
