package iocli

// IO abstracts terminal interaction so CLI commands can be tested with
// scripted input.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
