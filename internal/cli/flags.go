package cli

import (
	"fmt"
	"strconv"
)

// CheckPositive parses value as an integer greater than zero.
func CheckPositive(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid int value", value)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s is not a valid positive int value", value)
	}
	return n, nil
}

// positiveSeconds is a pflag.Value holding a strictly positive number of seconds.
type positiveSeconds int

func (s *positiveSeconds) String() string {
	return strconv.Itoa(int(*s))
}

func (s *positiveSeconds) Set(value string) error {
	n, err := CheckPositive(value)
	if err != nil {
		return err
	}
	*s = positiveSeconds(n)
	return nil
}

func (s *positiveSeconds) Type() string {
	return "sec"
}

// UsageError marks errors caused by invalid command line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
