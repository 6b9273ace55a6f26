package validate

import (
	"strings"
)

type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func (e FieldError) Error() string { return e.Field + " " + e.Msg }

type Errs []FieldError

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Error())
	}
	return b.String()
}

// Err returns the collected errors as an error, or nil if there are none.
func (e Errs) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e *Errs) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		*e = append(*e, FieldError{Field: field, Msg: "is required"})
	}
}

func (e *Errs) Positive(field string, v float64) {
	if v <= 0 {
		*e = append(*e, FieldError{Field: field, Msg: "must be a positive number"})
	}
}

func (e *Errs) PositiveInt(field string, v int) {
	if v <= 0 {
		*e = append(*e, FieldError{Field: field, Msg: "must be a positive integer"})
	}
}
