package executor

func NewParallelExecutor() ParallelExecutor {
	return ParallelExecutor{}
}

type ParallelExecutor struct {
}

type indexedError struct {
	index int
	err   error
}

func (s ParallelExecutor) Run(executables []Executable) []error {
	errors := make([]error, len(executables))
	results := make(chan indexedError, len(executables))

	for index, executable := range executables {
		go func(index int, executable Executable) {
			results <- indexedError{index: index, err: executable.Execute()}
		}(index, executable)
	}

	for range executables {
		result := <-results
		errors[result.index] = result.err
	}

	return errors
}
