package panicuse

func helper() {
	panic("boom") // want `panic\(\) should not be used in production code`
}
