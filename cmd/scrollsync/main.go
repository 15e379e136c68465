package main

import (
	"os"

	"scrollsync/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
