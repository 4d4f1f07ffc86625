package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lzcampos/investment-calculator/types"
)

// WriteLedgerCSVFile writes the ledger to a CSV file at the given path.
func WriteLedgerCSVFile(path string, ledger []types.Operation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ledger file: %w", err)
	}
	defer f.Close()

	return WriteLedgerCSV(f, ledger)
}

// WriteLedgerCSV writes one row per ledger operation to any io.Writer.
func WriteLedgerCSV(w io.Writer, ledger []types.Operation) error {
	cw := csv.NewWriter(w)

	header := []string{
		"kind",
		"timestamp",
		"price_used",
		"shares_bought",
		"total_shares",
		"available_cash",
		"total_contributed",
		"amount",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, op := range ledger {
		if err := writeOperationRow(cw, op); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func writeOperationRow(cw *csv.Writer, op types.Operation) error {
	var amount string
	switch o := op.(type) {
	case types.Contribution:
		amount = o.Amount.StringFixed(2)
	case types.DividendPayout:
		amount = o.Amount.StringFixed(2)
	}

	fill := op.Executed()
	record := []string{
		string(op.Kind()),
		strconv.FormatInt(op.Time(), 10),
		fill.PriceUsed.String(),
		strconv.FormatInt(fill.SharesBought, 10),
		strconv.FormatInt(fill.TotalShares, 10),
		fill.AvailableCash.StringFixed(2),
		fill.TotalContributed.StringFixed(2),
		amount,
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
