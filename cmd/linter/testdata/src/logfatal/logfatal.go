package logfatal

import "log"

func fail() {
	log.Fatalf("bad: %v", 1) // want `log\.Fatalf\(\) should only be called from main function in main package`
}
