package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSIP(t *testing.T) {
	tests := []struct {
		monthly, rate string
		years         int
		future        string
		invested      string
	}{
		{"5000", "12", 10, "1161695", "600000"},
		{"1000", "10", 1, "12670", "12000"},
		{"5000", "12", 50, "197244615", "3000000"},
		{"100", "50", 1, "1580", "1200"},
		{"2000", "0", 5, "120000", "120000"},
		{"0", "12", 10, "0", "0"},
	}
	for _, tt := range tests {
		p, err := ProjectSIP(dec(tt.monthly), dec(tt.rate), tt.years)
		require.NoError(t, err)
		assertDecimal(t, tt.future, p.FutureValue, "monthly %s rate %s years %d", tt.monthly, tt.rate, tt.years)
		assertDecimal(t, tt.invested, p.TotalInvested)
		assert.True(t, p.Gain.Equal(p.FutureValue.Sub(p.TotalInvested)))
	}
}

func TestProjectSIP_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name          string
		monthly, rate string
		years         int
		want          string
	}{
		{"negative monthly", "-1", "12", 10, "monthly investment"},
		{"negative rate", "5000", "-1", 10, "annual return"},
		{"rate too high", "5000", "50.5", 10, "annual return"},
		{"zero years", "5000", "12", 0, "years must be between 1 and 50"},
		{"too many years", "5000", "12", 51, "years must be between 1 and 50"},
		{"huge exponent", "1e2000000000", "12", 10, "exponents beyond"},
		{"tiny exponent", "5000", "1e-2000000000", 10, "exponents beyond"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectSIP(dec(tt.monthly), dec(tt.rate), tt.years)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
