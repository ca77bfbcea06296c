package main

import (
	"flag"
	"fmt"
	"os"

	"ticketsheet/backend/internal/booking"
	"ticketsheet/backend/internal/csvimport"
	"ticketsheet/backend/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	adultFlag := flag.Float64("adult", 9, "value of adult tickets")
	seniorFlag := flag.Float64("senior", 8, "value of senior tickets")
	childFlag := flag.Float64("child", 7, "value of child tickets")
	familyFlag := flag.Float64("family", 6, "value of family child tickets")
	simplifyFlag := flag.Bool("simplify", false, "shorten product titles")
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: breakdown [-adult 9] [-senior 8] [-child 7] [-family 6] <csv-file>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = f.Close()
	}()

	var opts []csvimport.Option
	if *simplifyFlag {
		opts = append(opts, csvimport.WithSimplifiedTitles())
	}
	records, problems, err := csvimport.New(opts...).Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}
	for _, problem := range problems {
		fmt.Fprintf(os.Stderr, "skipped row %d: %s\n", problem.Index, problem.Reason)
	}

	overrides := models.PriceOverrides{
		Standard: map[string]decimal.Decimal{
			"Adult":        decimal.NewFromFloat(*adultFlag),
			"Senior":       decimal.NewFromFloat(*seniorFlag),
			"Child":        decimal.NewFromFloat(*childFlag),
			"Family Child": decimal.NewFromFloat(*familyFlag),
		},
	}

	result := booking.Aggregate(records, overrides, models.FilterConfig{})
	printBreakdown(result)
}

func printBreakdown(result models.Breakdown) {
	for _, group := range result.Dates {
		fmt.Printf("Totals for %s\n", booking.FormatGroupDate(group.Date))
		for _, event := range group.Events {
			fmt.Printf("Totals for %s\n\n", event.Event)

			fmt.Println("  Full-price tickets")
			for _, name := range event.TicketTypes {
				fmt.Printf("  %-12s: %4d\n", name, event.FullValueTickets[name])
			}
			fmt.Println()

			fmt.Println("  Reduced tickets")
			for _, name := range event.TicketTypes {
				fmt.Printf("  %-12s: %4d\n", name, event.ReducedTickets[name])
			}
			fmt.Println()

			fmt.Printf("  Orders: %4d\n", event.TotalOrders)
			fmt.Printf("  Income:        £%s\n", event.TotalValue.StringFixed(2))
			fmt.Printf("  Extra value:   £%s\n", event.TotalExtraCost.StringFixed(2))
			fmt.Printf("  Total savings: £%s\n\n", event.TotalSaving.StringFixed(2))
		}

		fmt.Println("------------------------------")
		fmt.Println()
	}

	fmt.Printf("Grand total: £%s across %d tickets in %d orders\n",
		result.Totals.TotalValue.StringFixed(2), result.Totals.TotalTickets, result.Totals.TotalOrders)
	for _, reject := range result.Rejected {
		fmt.Fprintf(os.Stderr, "rejected record %d: %s\n", reject.Index, reject.Reason)
	}
}
