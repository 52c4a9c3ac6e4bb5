package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIP_Defaults(t *testing.T) {
	out, _, err := runFinancely(t, "sip", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "SIP of ₹5,000 a month at 12% for 10 years")
	assert.Contains(t, out, "Invested:      ₹600,000")
	assert.Contains(t, out, "Future value:  ₹1,161,695")
	assert.Contains(t, out, "Gain:          ₹561,695")
}

func TestSIP_ZeroRate(t *testing.T) {
	out, _, err := runFinancely(t, "sip", "--dir", t.TempDir(), "--monthly", "2000", "--rate", "0", "--years", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Future value:  ₹120,000")
	assert.Contains(t, out, "Gain:          ₹0")
}

func TestSIP_RejectsBadInput(t *testing.T) {
	_, _, err := runFinancely(t, "sip", "--dir", t.TempDir(), "--years", "60")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "years must be between")

	_, _, err = runFinancely(t, "sip", "--dir", t.TempDir(), "--monthly", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing --monthly")
}
