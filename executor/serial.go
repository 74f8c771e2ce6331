package executor

func NewSerialExecutor() SerialExecutor {
	return SerialExecutor{}
}

type SerialExecutor struct {
}

func (s SerialExecutor) Run(executables []Executable) []error {
	errors := make([]error, len(executables))
	for index, executable := range executables {
		errors[index] = executable.Execute()
	}

	return errors
}
