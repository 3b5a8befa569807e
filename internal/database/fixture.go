package database

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"fleettrack/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/fleet.yaml
var defaultFixture []byte

// Fixture is the full dataset loaded into the record store
type Fixture struct {
	Customers      []models.Customer          `yaml:"customers"`
	Vehicles       []models.Vehicle           `yaml:"vehicles"`
	Alerts         []models.Alert             `yaml:"alerts"`
	Locations      []models.VehicleLocation   `yaml:"locations"`
	Performance    []models.PerformanceSample `yaml:"performance"`
	FuelEfficiency []models.FuelEfficiency    `yaml:"fuel_efficiency"`
	MonthlyMetrics []models.MonthlyMetric     `yaml:"monthly_metrics"`
	FuelTrends     []models.FuelTrend         `yaml:"fuel_trends"`
	Reports        []models.ReportDefinition  `yaml:"reports"`
	Activity       []models.ActivityEvent     `yaml:"activity"`
}

// LoadFixture parses a YAML dataset and validates its entity records
func LoadFixture(r io.Reader) (*Fixture, error) {
	var fixture Fixture

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	if err := fixture.Validate(); err != nil {
		return nil, err
	}

	fixture.assignPositions()

	return &fixture, nil
}

// LoadFixtureFile reads the fixture at path, or the embedded dataset when path is empty
func LoadFixtureFile(path string) (*Fixture, error) {
	if path == "" {
		return DefaultFixture()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer f.Close()

	return LoadFixture(f)
}

// DefaultFixture returns the embedded fleet dataset
func DefaultFixture() (*Fixture, error) {
	return LoadFixture(bytes.NewReader(defaultFixture))
}

// Validate checks every customer, vehicle and alert and rejects duplicate ids
func (f *Fixture) Validate() error {
	seen := make(map[string]struct{})
	for i := range f.Customers {
		if err := f.Customers[i].Validate(); err != nil {
			return fmt.Errorf("customer %d: %w", i, err)
		}
		if _, dup := seen[f.Customers[i].Code]; dup {
			return fmt.Errorf("duplicate customer id %s", f.Customers[i].Code)
		}
		seen[f.Customers[i].Code] = struct{}{}
	}

	for i := range f.Vehicles {
		if err := f.Vehicles[i].Validate(); err != nil {
			return fmt.Errorf("vehicle %d: %w", i, err)
		}
		if _, dup := seen[f.Vehicles[i].Code]; dup {
			return fmt.Errorf("duplicate vehicle id %s", f.Vehicles[i].Code)
		}
		seen[f.Vehicles[i].Code] = struct{}{}
	}

	alertNumbers := make(map[int]struct{})
	for i := range f.Alerts {
		if err := f.Alerts[i].Validate(); err != nil {
			return fmt.Errorf("alert %d: %w", i, err)
		}
		if _, dup := alertNumbers[f.Alerts[i].Number]; dup {
			return fmt.Errorf("duplicate alert id %d", f.Alerts[i].Number)
		}
		alertNumbers[f.Alerts[i].Number] = struct{}{}
	}

	return nil
}

// assignPositions records the dataset order so list queries can return it unchanged
func (f *Fixture) assignPositions() {
	for i := range f.Customers {
		f.Customers[i].Position = i
	}
	for i := range f.Vehicles {
		f.Vehicles[i].Position = i
	}
	for i := range f.Alerts {
		f.Alerts[i].Position = i
	}
	for i := range f.Locations {
		f.Locations[i].Position = i
	}
	for i := range f.Performance {
		f.Performance[i].Position = i
	}
	for i := range f.FuelEfficiency {
		f.FuelEfficiency[i].Position = i
	}
	for i := range f.MonthlyMetrics {
		f.MonthlyMetrics[i].Position = i
	}
	for i := range f.FuelTrends {
		f.FuelTrends[i].Position = i
	}
	for i := range f.Reports {
		f.Reports[i].Position = i
	}
	for i := range f.Activity {
		f.Activity[i].Position = i
	}
}
