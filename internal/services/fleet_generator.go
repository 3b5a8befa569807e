package services

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"fleettrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var (
	customerStatuses = []string{models.CustomerStatusActive, models.CustomerStatusPending, models.CustomerStatusInactive}
	vehicleStatuses  = []string{models.VehicleStatusActive, models.VehicleStatusMaintenance, models.VehicleStatusInactive}
	depots           = []string{"Downtown Depot", "North Station", "Service Center", "Airport Hub", "Harbor Yard", "West Terminal"}
	vehicleMakes     = map[string][]string{
		"Ford":         {"Transit", "F-150", "E-Series"},
		"Mercedes":     {"Sprinter", "Vito", "eSprinter"},
		"Chevrolet":    {"Express", "Silverado"},
		"Ram":          {"ProMaster", "1500"},
		"Nissan":       {"NV200", "NV3500"},
		"Isuzu":        {"NPR", "NQR"},
		"Freightliner": {"M2 106", "Cascadia"},
		"Volkswagen":   {"Crafter", "Transporter"},
	}
)

type fleetGenerator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewFleetGenerator creates a generator for synthetic customers and vehicles.
// A zero seed draws a random one.
func NewFleetGenerator(seed uint64) FleetGeneratorInterface {
	return &fleetGenerator{
		faker: gofakeit.New(seed),
		now:   time.Now(),
	}
}

// GenerateCustomers returns count customers coded CUST-<firstNumber>, CUST-<firstNumber+1>, ...
func (g *fleetGenerator) GenerateCustomers(count, firstNumber int) []models.Customer {
	customers := make([]models.Customer, 0, max(count, 0))
	for i := 0; i < count; i++ {
		company := g.faker.Company()
		contact := g.faker.Name()
		joined := g.faker.DateRange(g.now.AddDate(-3, 0, 0), g.now.AddDate(0, -1, 0))
		lastActivity := g.faker.DateRange(joined, g.now)
		address := g.faker.Address()

		customers = append(customers, models.Customer{
			Code:             fmt.Sprintf("CUST-%03d", firstNumber+i),
			Name:             company,
			ContactPerson:    contact,
			Email:            emailFor(contact, company),
			Phone:            g.faker.Numerify("+1 (###) ###-####"),
			Status:           g.faker.RandomString(customerStatuses),
			VehiclesAssigned: g.faker.Number(0, 25),
			JoinDate:         joined.Format(models.DateLayout),
			LastActivity:     lastActivity.Format(models.DateLayout),
			TotalRevenue:     decimal.NewFromInt(int64(g.faker.Number(0, 150)) * 1000),
			Address:          fmt.Sprintf("%s, %s, %s", address.Street, address.City, address.State),
		})
	}
	return customers
}

// GenerateVehicles returns count vehicles coded VH-<firstNumber>, VH-<firstNumber+1>, ...
func (g *fleetGenerator) GenerateVehicles(count, firstNumber int) []models.Vehicle {
	// sorted so a fixed seed yields a fixed fleet
	brands := slices.Sorted(maps.Keys(vehicleMakes))

	vehicles := make([]models.Vehicle, 0, max(count, 0))
	for i := 0; i < count; i++ {
		brand := g.faker.RandomString(brands)
		status := g.faker.RandomString(vehicleStatuses)
		lastService := g.faker.DateRange(g.now.AddDate(0, -6, 0), g.now)

		driver := models.UnassignedDriver
		if status == models.VehicleStatusActive {
			driver = g.faker.Name()
		}

		vehicles = append(vehicles, models.Vehicle{
			Code:         fmt.Sprintf("VH-%04d", firstNumber+i),
			Make:         brand,
			Model:        g.faker.RandomString(vehicleMakes[brand]),
			Year:         g.faker.Number(2015, g.now.Year()),
			LicensePlate: strings.ToUpper(g.faker.Lexify("???")) + "-" + g.faker.Numerify("###"),
			Status:       status,
			Location:     g.faker.RandomString(depots),
			Driver:       driver,
			FuelLevel:    g.faker.Number(0, 100),
			Mileage:      g.faker.Number(1000, 120000),
			LastService:  lastService.Format(models.DateLayout),
			NextService:  lastService.AddDate(0, 3, 0).Format(models.DateLayout),
		})
	}
	return vehicles
}

// emailFor builds first.last@company.com from letters only so it always validates
func emailFor(contact, company string) string {
	local := strings.Join(strings.Fields(lettersOnly(contact, true)), ".")
	domain := lettersOnly(company, false)
	if local == "" {
		local = "contact"
	}
	if domain == "" {
		domain = "example"
	}
	return local + "@" + domain + ".com"
}

func lettersOnly(value string, keepSpaces bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' && keepSpaces:
			return r
		default:
			return -1
		}
	}, value)
}
