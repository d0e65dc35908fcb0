package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 1 {
		log.Fatal("unexpected arguments")
	}
	os.Exit(0)
}
