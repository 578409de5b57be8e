package definition

import "errors"

func NewOptions() Options {
	return Options{}
}

// Options configure the construction of a process definition.
type Options struct {
	IdOffset   int64 // Offset for generated IDs - the first generated ID is IdOffset + 1.
	ProcessId  int64 // ID of the process definition, assigned by the deploying component.
	StrictMode bool  // Enables the syntax check of timer expressions and expressions, interpreted by expr.
}

func (o Options) Validate() error {
	if o.IdOffset < 0 {
		return errors.New("ID offset must be greater than or equal to 0")
	}
	if o.ProcessId < 0 {
		return errors.New("process ID must be greater than or equal to 0")
	}
	return nil
}

func newOptions(customizers []func(*Options)) (Options, error) {
	options := NewOptions()
	for _, customizer := range customizers {
		customizer(&options)
	}

	if err := options.Validate(); err != nil {
		return Options{}, Error{
			Type:   ErrorValidation,
			Title:  "invalid options",
			Detail: err.Error(),
		}
	}

	return options, nil
}
