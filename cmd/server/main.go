package main

import (
	"github.com/salad-karo/storefront/internal/app"
	"github.com/salad-karo/storefront/internal/server"
)

func main() {
	app.Invoke(
		server.StartServer,
	).Run()
}
