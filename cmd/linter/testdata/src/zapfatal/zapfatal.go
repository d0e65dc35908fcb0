package zapfatal

// Имитация zap-логгера: достаточно метода Fatal на идентификаторе
type fatalLogger struct{}

func (l *fatalLogger) Fatal(msg string) {}

func shutdown(log *fatalLogger) {
	log.Fatal("boom") // want `log\.Fatal\(\) should only be called from main function in main package`
}
