package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jinhoo5694/MSM/internal/model"
)

func writeJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func writeProducts(w io.Writer, products []model.Product, format string) error {
	if format == "json" {
		return writeJSON(w, products)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BARCODE\tNAME\tQTY\tSTATUS")
	for i := range products {
		p := &products[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.Barcode, p.Name, p.Quantity, p.Status())
	}
	return tw.Flush()
}

func writeProduct(w io.Writer, p *model.Product, format string) error {
	if format == "json" {
		return writeJSON(w, p)
	}

	fmt.Fprintf(w, "%s  %s\n", p.Barcode, p.Name)
	fmt.Fprintf(w, "quantity: %d (%s)\n", p.Quantity, p.Status())
	fmt.Fprintf(w, "default reduction: %d, alert at: %d, safe at: %d\n",
		p.DefaultReductionAmount, p.AlertQuantity, p.SafeQuantity)
	if p.ImagePath != "" {
		fmt.Fprintf(w, "image: %s\n", p.ImagePath)
	}
	return nil
}

func writeHistory(w io.Writer, entries []model.StockChangeLogEntry, format string) error {
	if format == "json" {
		return writeJSON(w, entries)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tBARCODE\tNAME\tOLD\tNEW\tCHANGED\tREASON")
	total := 0
	for i := range entries {
		e := &entries[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%+d\t%s\n",
			e.Time.Format("2006-01-02 15:04:05"), e.Barcode, e.Name,
			e.OldQty, e.NewQty, e.ChangedQuantity(), e.Reason)
		total += e.ChangedQuantity()
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d entries, net change %+d\n", len(entries), total)
	return nil
}
