package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/travel-app/flight-search-tool/internal/domain"
)

const (
	timeOfDayLayout = "15:04"

	// bookingLinkMax is the display cutoff for booking deep links
	bookingLinkMax = 50
)

// renderTable writes the flight results as an aligned table. Flights
// without segments have no displayable endpoints and are skipped.
func renderTable(w io.Writer, flights []domain.Flight) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Price\tAirlines\tDeparture\tArrival\tDuration\tStops\tBooking")

	for _, f := range flights {
		if len(f.Segments) == 0 {
			continue
		}
		first := f.Segments[0]
		last := f.Segments[len(f.Segments)-1]

		fmt.Fprintf(tw, "%.0f %s\t%s\t%s %s\t%s %s\t%s\t%s\t%s\n",
			f.PriceTotal, f.Currency,
			airlineNames(f.AirlineCodes),
			first.From, first.Departure.Format(timeOfDayLayout),
			last.To, last.Arrival.Format(timeOfDayLayout),
			domain.FormatDuration(f.TotalDurationMinutes()),
			domain.FormatStops(f.Segments),
			formatBookingLink(f.BookingLink),
		)
	}

	tw.Flush()
}

// airlineNames resolves codes to display names, keeping order.
func airlineNames(codes []string) string {
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = domain.AirlineName(code)
	}
	return strings.Join(names, ", ")
}

// formatBookingLink truncates long deep links for table display.
func formatBookingLink(link string) string {
	switch {
	case link == "":
		return "N/A"
	case len(link) > bookingLinkMax:
		return link[:bookingLinkMax] + "..."
	default:
		return link
	}
}
