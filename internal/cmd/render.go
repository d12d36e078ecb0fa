package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/themuzzleflare/provenance/internal/config"
	"github.com/themuzzleflare/provenance/internal/models"
	"github.com/themuzzleflare/provenance/internal/pipeline"
	"github.com/themuzzleflare/provenance/internal/types"
)

// renderState writes the non-ready states. It returns true when the
// caller should render the snapshot.
func renderState(w io.Writer, state pipeline.State) bool {
	switch state.Kind {
	case pipeline.StateError:
		fmt.Fprintf(w, "Error: %s\n", state.Message)
	case pipeline.StateEmpty:
		fmt.Fprintln(w, "No results")
	case pipeline.StateInitialLoad:
		fmt.Fprintln(w, "Loading...")
	default:
		return true
	}
	return false
}

// formatDay renders a section day according to the configured date
// display style.
func formatDay(day types.Day, style config.DateStyle) string {
	if style != config.DateStyleRelative {
		return day.Format()
	}

	today := types.DayOf(time.Now())
	days := today.DaysSince(day)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func renderTransactionSections(w io.Writer, sections pipeline.SectionedCollection[types.Day, models.Transaction], style config.DateStyle) {
	for _, section := range sections {
		fmt.Fprintf(w, "%s\n", formatDay(section.Key, style))
		for _, transaction := range section.Items {
			status := ""
			if !transaction.IsSettled() {
				status = " (held)"
			}
			fmt.Fprintf(w, "  %-40s %12s%s\n", transaction.Description, transaction.Amount.Display(), status)
		}
	}
}

func renderTransactionDetail(w io.Writer, t models.Transaction) {
	fmt.Fprintf(w, "%s\n", t.Description)
	if t.RawText != "" {
		fmt.Fprintf(w, "  Raw text:    %s\n", t.RawText)
	}
	if t.Message != "" {
		fmt.Fprintf(w, "  Message:     %s\n", t.Message)
	}
	fmt.Fprintf(w, "  Status:      %s\n", t.Status)
	fmt.Fprintf(w, "  Amount:      %s\n", t.Amount.Display())
	if t.ForeignAmount != nil {
		fmt.Fprintf(w, "  Foreign:     %s %s\n", t.ForeignAmount.Display(), t.ForeignAmount.CurrencyCode)
	}
	if t.HoldAmount != nil {
		fmt.Fprintf(w, "  Hold:        %s\n", t.HoldAmount.Display())
	}
	fmt.Fprintf(w, "  Created:     %s\n", t.CreatedAt.Local().Format(time.RFC1123))
	if t.SettledAt != nil {
		fmt.Fprintf(w, "  Settled:     %s\n", t.SettledAt.Local().Format(time.RFC1123))
	}
	if t.CategoryID != "" {
		fmt.Fprintf(w, "  Category:    %s\n", t.CategoryID)
	}
	for _, tag := range t.TagIDs {
		fmt.Fprintf(w, "  Tag:         %s\n", tag)
	}
}

func renderAccountSections(w io.Writer, sections pipeline.SectionedCollection[models.AccountType, models.Account]) {
	for _, section := range sections {
		fmt.Fprintf(w, "%s\n", section.Key)
		for _, account := range section.Items {
			fmt.Fprintf(w, "  %-40s %12s\n", account.DisplayName, account.Balance.Display())
		}
	}
}

func renderTagSections(w io.Writer, sections pipeline.SectionedCollection[string, models.Tag]) {
	for _, section := range sections {
		fmt.Fprintf(w, "%s\n", section.Key)
		for _, tag := range section.Items {
			fmt.Fprintf(w, "  %s\n", tag.ID)
		}
	}
}
