package main

import (
	"github.com/carousell/ct-go/pkg/logger/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
