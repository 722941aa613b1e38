package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouzayen1/SalesApexAi2.5/internal/config"
	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-07-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_EmptyMeansZero(t *testing.T) {
	got, err := parseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := parseDate("07/01/2026")
	require.Error(t, err)
}

func TestReadDealInput_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"vehicleMake":"Toyota","state":"CA"}`), 0o644))

	in, err := readDealInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", in.VehicleMake)
	assert.Equal(t, "CA", in.State)
}

func TestReadDealInput_MissingFile(t *testing.T) {
	_, err := readDealInput(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestApplyConfigDefaults(t *testing.T) {
	orig := cfg
	defer func() { cfg = orig }()
	cfg = &config.Config{Deal: config.DealConfig{PaymentTolerance: 75, DealerTier: 2, VSCTier: "premium"}}

	in := model.DealInput{}
	applyConfigDefaults(&in)

	assert.Equal(t, 75.0, in.PaymentTolerance)
	assert.Equal(t, 2, in.DealerTier)
	assert.Equal(t, model.VSCTierPremium, in.VSCTier)
}

func TestApplyConfigDefaults_KeepsExplicitValues(t *testing.T) {
	orig := cfg
	defer func() { cfg = orig }()
	cfg = &config.Config{Deal: config.DealConfig{PaymentTolerance: 75, DealerTier: 2, VSCTier: "premium"}}

	in := model.DealInput{PaymentTolerance: 40, DealerTier: 4, VSCTier: model.VSCTierBasic}
	applyConfigDefaults(&in)

	assert.Equal(t, 40.0, in.PaymentTolerance)
	assert.Equal(t, 4, in.DealerTier)
	assert.Equal(t, model.VSCTierBasic, in.VSCTier)
}
