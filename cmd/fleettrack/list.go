package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"fleettrack/internal/database"
	"fleettrack/internal/models"
	"fleettrack/internal/services"

	"github.com/spf13/cobra"
)

// listKind describes one filterable entity of the fixture
type listKind struct {
	use        string
	short      string
	schema     models.EntitySchema
	statusFlag string
	// render filters the fixture and returns the matched records with their table rows
	render func(f *database.Fixture, criteria models.FilterCriteria) (any, []string, [][]string)
}

var customersList = listKind{
	use:        "customers",
	short:      "Filter the customer directory",
	schema:     models.CustomerSchema,
	statusFlag: "status",
	render: func(f *database.Fixture, criteria models.FilterCriteria) (any, []string, [][]string) {
		matched := services.FilterRecords(f.Customers, models.CustomerSchema, criteria)
		return matched, []string{"ID", "NAME", "CONTACT", "STATUS", "VEHICLES", "REVENUE"},
			toRows(matched, func(c models.Customer) []string {
				return []string{c.Code, c.Name, c.ContactPerson, c.Status, strconv.Itoa(c.VehiclesAssigned), c.TotalRevenue.StringFixed(2)}
			})
	},
}

var vehiclesList = listKind{
	use:        "vehicles",
	short:      "Filter the vehicle fleet",
	schema:     models.VehicleSchema,
	statusFlag: "status",
	render: func(f *database.Fixture, criteria models.FilterCriteria) (any, []string, [][]string) {
		matched := services.FilterRecords(f.Vehicles, models.VehicleSchema, criteria)
		return matched, []string{"ID", "VEHICLE", "PLATE", "STATUS", "DRIVER", "FUEL"},
			toRows(matched, func(v models.Vehicle) []string {
				return []string{v.Code, v.DisplayName(), v.LicensePlate, v.Status, v.Driver, fmt.Sprintf("%d%%", v.FuelLevel)}
			})
	},
}

var alertsList = listKind{
	use:        "alerts",
	short:      "Filter the alert feed",
	schema:     models.AlertSchema,
	statusFlag: "severity",
	render: func(f *database.Fixture, criteria models.FilterCriteria) (any, []string, [][]string) {
		matched := services.FilterRecords(f.Alerts, models.AlertSchema, criteria)
		return matched, []string{"ID", "TYPE", "VEHICLE", "SEVERITY", "MESSAGE", "RAISED"},
			toRows(matched, func(a models.Alert) []string {
				return []string{strconv.Itoa(a.Number), a.Type, a.VehicleCode, a.Severity, a.Message, a.AgeLabel()}
			})
	},
}

func newListCmd(a *app, kind listKind) *cobra.Command {
	var (
		search string
		status string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   kind.use,
		Short: kind.short,
		Long: fmt.Sprintf(`Filters the %s of the fleet dataset with a case-insensitive search
and an exact %s filter, printing the matches in dataset order.`, kind.use, kind.statusFlag),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := kind.schema.StatusFilterOptions()
			if !slices.Contains(options, status) {
				return fmt.Errorf("invalid %s %q: must be one of %s", kind.statusFlag, status, strings.Join(options, ", "))
			}

			fixture, err := a.fixture()
			if err != nil {
				return err
			}

			criteria := models.NewFilterCriteria().WithSearchTerm(search).WithStatus(status)
			matched, headers, rows := kind.render(fixture, criteria)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(matched)
			}
			return writeTable(cmd.OutOrStdout(), headers, rows)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive search term")
	cmd.Flags().StringVar(&status, kind.statusFlag, models.StatusFilterAll, fmt.Sprintf("Exact %s filter (%s)", kind.statusFlag, strings.Join(kind.schema.StatusFilterOptions(), ", ")))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print matches as JSON")

	return cmd
}

func toRows[T any](records []T, row func(T) []string) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, row(record))
	}
	return rows
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintf(tw, "\n%d record(s)\n", len(rows))
	return tw.Flush()
}
