package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driven/storage/memory"
	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driven"
)

var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() driven.Clock {
	return driven.ClockFunc(func() time.Time { return testNow })
}

func testCalibration(t *testing.T, sectorID string) domain.SectorCalibration {
	t.Helper()
	sc, err := domain.NewSectorCalibration(domain.Record{
		"sector_id":      sectorID,
		"sector_name":    "Technology",
		"h_r_baseline":   "72.50",
		"weights":        domain.DefaultWeights(),
		"targets":        domain.DefaultWeights(),
		"effective_date": "2026-01-01",
	})
	require.NoError(t, err)
	return sc
}

func testCompanyCreate(t *testing.T, sectorID string) domain.CompanyCreate {
	t.Helper()
	cc, err := domain.NewCompanyCreate(domain.Record{
		"name":      "InnovateAI Inc",
		"sector_id": sectorID,
	})
	require.NoError(t, err)
	return cc
}

func newTestRegistry() *RegistryService {
	return NewRegistryService(memory.NewCompanyStore(), memory.NewCalibrationStore(), fixedClock())
}

func TestRegistryService_CreateCompany(t *testing.T) {
	svc := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, svc.RegisterCalibration(ctx, testCalibration(t, "tech"), false))

	company, err := svc.CreateCompany(ctx, testCompanyCreate(t, "tech"))
	require.NoError(t, err)

	// Identity and timestamps are assigned by the service.
	_, err = uuid.Parse(company.CompanyID)
	assert.NoError(t, err)
	assert.True(t, company.CreatedAt.Equal(testNow))
	assert.True(t, company.UpdatedAt.Equal(testNow))
	assert.Equal(t, domain.StatusActive, company.Status)

	got, err := svc.GetCompany(ctx, company.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, "InnovateAI Inc", got.Name)
}

func TestRegistryService_CreateCompanyUnknownSector(t *testing.T) {
	svc := newTestRegistry()
	ctx := context.Background()

	_, err := svc.CreateCompany(ctx, testCompanyCreate(t, "unregistered"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "unregistered")

	// Nothing should have been stored.
	companies, err := svc.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestRegistryService_CreateCompanyUniqueIDs(t *testing.T) {
	svc := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, svc.RegisterCalibration(ctx, testCalibration(t, "tech"), false))

	first, err := svc.CreateCompany(ctx, testCompanyCreate(t, "tech"))
	require.NoError(t, err)
	second, err := svc.CreateCompany(ctx, testCompanyCreate(t, "tech"))
	require.NoError(t, err)

	assert.NotEqual(t, first.CompanyID, second.CompanyID)

	companies, err := svc.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}

func TestRegistryService_RegisterCalibrationDuplicate(t *testing.T) {
	svc := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, svc.RegisterCalibration(ctx, testCalibration(t, "tech"), false))

	err := svc.RegisterCalibration(ctx, testCalibration(t, "tech"), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRegistryService_RegisterCalibrationReplace(t *testing.T) {
	svc := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, svc.RegisterCalibration(ctx, testCalibration(t, "tech"), false))

	updated := testCalibration(t, "tech")
	updated.SectorName = "Deep Tech"
	require.NoError(t, svc.RegisterCalibration(ctx, updated, true))

	got, err := svc.GetCalibration(ctx, "tech")
	require.NoError(t, err)
	assert.Equal(t, "Deep Tech", got.SectorName)

	all, err := svc.ListCalibrations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegistryService_GetCalibrationNotFound(t *testing.T) {
	svc := newTestRegistry()

	_, err := svc.GetCalibration(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
