package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shapedthought/azure-vm-assessment/model"
)

// csvWriter writes one CSV file per subscription into the run directory.
type csvWriter struct {
	dir string
}

func NewCSVWriter(dir string) *csvWriter {
	return &csvWriter{dir: dir}
}

func (w *csvWriter) WriteBatch(batch model.ReportBatch) error {
	path := filepath.Join(w.dir, sanitizeName(batch.Subscription.Name)+".csv")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, rec := range batch.Records {
		if err := cw.Write(row(rec)); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.VMID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func (w *csvWriter) Close() error {
	return nil
}
