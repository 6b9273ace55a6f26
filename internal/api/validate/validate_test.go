package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	var errs Errs
	errs.Require("email", "a@b.c")
	errs.Require("password", "  ")
	errs.Require("role", "")

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "password is required; role is required", err.Error())
}

func TestNumericChecks(t *testing.T) {
	var errs Errs
	errs.Positive("budget", 0)
	errs.PositiveInt("timeline_days", -1)

	require.Len(t, errs, 2)
	assert.Equal(t, "budget must be a positive number", errs[0].Error())
	assert.Equal(t, "timeline_days must be a positive integer", errs[1].Error())
}

func TestErrNilWhenEmpty(t *testing.T) {
	var errs Errs
	errs.Require("title", "ok")
	errs.Positive("budget", 12.5)
	assert.NoError(t, errs.Err())
}
