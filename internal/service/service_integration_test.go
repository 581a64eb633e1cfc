//go:build integration
// +build integration

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kjstillabower/ornithologist/internal/client"
	"github.com/kjstillabower/ornithologist/internal/testhelpers"
)

func TestLookup_Integration(t *testing.T) {
	cfg := testhelpers.GetIntegrationConfig(t)
	svc := testhelpers.SetupIntegrationService(t, cfg)

	report, err := svc.Lookup(context.Background(), "London", "GB")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if report.Data.Location == "" {
		t.Error("Lookup() returned empty location")
	}
	if report.Data.Humidity <= 0 || report.Data.Pressure <= 0 {
		t.Errorf("Lookup() numeric fields look unset: %+v", report.Data)
	}
	t.Logf("%s: %s (%s)", report.Data.Location, report.Data.Conditions, report.Condition)
}

func TestLookup_Integration_UnknownCity(t *testing.T) {
	cfg := testhelpers.GetIntegrationConfig(t)
	svc := testhelpers.SetupIntegrationService(t, cfg)

	_, err := svc.Lookup(context.Background(), "Nowhereville Qqq", "ZZ")
	if !errors.Is(err, client.ErrLocationNotFound) {
		t.Errorf("Lookup() error = %v, want ErrLocationNotFound", err)
	}
}
