package executor

//go:generate counterfeiter -o fakes/fake_executable.go . Executable

// Executor runs every executable and returns their errors slotted by
// position: errs[i] belongs to executables[i] and is nil on success.
type Executor interface {
	Run([]Executable) []error
}

type Executable interface {
	Execute() error
}
