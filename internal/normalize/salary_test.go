package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzansijobs/careerhub/internal/types"
)

func TestSalary_Range(t *testing.T) {
	sal := Salary("R40 000 - R60 000 per month")

	require.NotNil(t, sal.Min)
	require.NotNil(t, sal.Max)
	assert.Equal(t, 40000, *sal.Min)
	assert.Equal(t, 60000, *sal.Max)
	assert.Equal(t, "ZAR", sal.Currency)
	assert.Equal(t, types.PeriodMonthly, sal.Period)
	assert.True(t, sal.Visible)
}

func TestSalary_ReversedRangeIsReordered(t *testing.T) {
	sal := Salary("R60000 - R40000")

	require.NotNil(t, sal.Min)
	require.NotNil(t, sal.Max)
	assert.Equal(t, 40000, *sal.Min)
	assert.Equal(t, 60000, *sal.Max)
}

func TestSalary_SingleAmountSetsMinEqualsMax(t *testing.T) {
	sal := Salary("R25 000 per month")

	require.NotNil(t, sal.Min)
	require.NotNil(t, sal.Max)
	assert.Equal(t, 25000, *sal.Min)
	assert.Equal(t, 25000, *sal.Max)
}

func TestSalary_KSuffix(t *testing.T) {
	sal := Salary("R25k - R35k")

	require.NotNil(t, sal.Min)
	require.NotNil(t, sal.Max)
	assert.Equal(t, 25000, *sal.Min)
	assert.Equal(t, 35000, *sal.Max)
}

func TestSalary_NoAmounts(t *testing.T) {
	for _, raw := range []string{"", "Market related", "Negotiable", "   "} {
		sal := Salary(raw)
		assert.Nil(t, sal.Min, "input %q", raw)
		assert.Nil(t, sal.Max, "input %q", raw)
		assert.False(t, sal.Visible, "input %q", raw)
	}
}

func TestSalary_Periods(t *testing.T) {
	tests := []struct {
		raw    string
		period types.SalaryPeriod
	}{
		{"R900,000 per annum", types.PeriodAnnually},
		{"R850000 annually", types.PeriodAnnually},
		{"R350 per hour", types.PeriodHourly},
		{"R30 000 per month", types.PeriodMonthly},
		{"R30 000", types.PeriodMonthly},
	}
	for _, tt := range tests {
		sal := Salary(tt.raw)
		assert.Equal(t, tt.period, sal.Period, "input %q", tt.raw)
	}
}

func TestSalary_CommaSeparators(t *testing.T) {
	sal := Salary("ZAR 450,000 - 600,000 per annum")

	require.NotNil(t, sal.Min)
	require.NotNil(t, sal.Max)
	assert.Equal(t, 450000, *sal.Min)
	assert.Equal(t, 600000, *sal.Max)
	assert.Equal(t, types.PeriodAnnually, sal.Period)
}
