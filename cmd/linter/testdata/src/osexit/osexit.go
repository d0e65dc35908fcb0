package main

import "os"

func helper() {
	os.Exit(1) // want `os\.Exit\(\) should only be called from main function in main package`
}

func main() {
	helper()
	os.Exit(0)
}
