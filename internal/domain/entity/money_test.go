package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "USD", want: "usd"},
		{input: " jpy ", want: "jpy"},
		{input: "us", wantErr: true},
		{input: "usdd", wantErr: true},
		{input: "u5d", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeCurrency(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCountry(t *testing.T) {
	got, err := NormalizeCountry(" jp")
	require.NoError(t, err)
	assert.Equal(t, "JP", got)

	_, err = NormalizeCountry("JPN")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = NormalizeCountry("1P")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestSettlementCurrency(t *testing.T) {
	assert.Equal(t, "jpy", SettlementCurrency("JP"))
	assert.Equal(t, "usd", SettlementCurrency("us"))
	assert.Equal(t, "eur", SettlementCurrency("FR"))
	assert.Equal(t, DefaultCurrency, SettlementCurrency("ZZ"))
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "10.15", FormatMinorUnits(1015, "usd"))
	assert.Equal(t, "0.05", FormatMinorUnits(5, "usd"))
	assert.Equal(t, "-1.00", FormatMinorUnits(-100, "eur"))
	assert.Equal(t, "1000", FormatMinorUnits(1000, "JPY"))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.ErrorIs(t, ValidateAmount(0), errs.ErrValidation)
	assert.ErrorIs(t, ValidateAmount(-1), errs.ErrValidation)
}
