// seed_medicines genera un script SQL para poblar la tabla medicine a partir de
// la exportación CSV del sistema anterior (codificada en ISO-8859-1).
//
// Columnas: batch_no, drug_name, expiry_date, stock_quantity, price, sup_id, type.
// La primera fila se descarta si es encabezado.
//
// Uso: go run ./cmd/seed_medicines [ruta/medicamentos.csv]
// Escribe: internal/infrastructure/postgres/migrations/002_seed_medicines.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/farmacia-api/internal/domain/expiry"
)

const columns = 7

type medicineRow struct {
	batch, drug, expiry, supplier, kind string
	stock                                int
	price                                decimal.Decimal
}

func main() {
	csvPath := "medicamentos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, skipped, err := readRows(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_medicines.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d medicamentos, %d filas descartadas\n", outPath, len(rows), skipped)
}

// readRows decodifica Latin-1 y devuelve las filas válidas. Las filas con
// cantidad o precio ilegibles se descartan y se cuentan.
func readRows(r io.Reader) ([]medicineRow, int, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []medicineRow
	skipped := 0
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, err
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(rec[0]), "batch_no") {
				continue
			}
		}
		row, ok := parseRow(rec)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseRow(rec []string) (medicineRow, bool) {
	if len(rec) < columns {
		return medicineRow{}, false
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	if rec[0] == "" || rec[1] == "" {
		return medicineRow{}, false
	}
	stock, err := strconv.Atoi(rec[3])
	if err != nil || stock < 0 {
		return medicineRow{}, false
	}
	price, err := decimal.NewFromString(rec[4])
	if err != nil || price.IsNegative() {
		return medicineRow{}, false
	}
	// Fecha ilegible: se conserva el medicamento sin vencimiento.
	exp := ""
	if t, err := expiry.ParseDate(rec[2]); err == nil {
		exp = t.Format("2006-01-02")
	}
	return medicineRow{
		batch:    rec[0],
		drug:     rec[1],
		expiry:   exp,
		stock:    stock,
		price:    price,
		supplier: rec[5],
		kind:     rec[6],
	}, true
}

func writeSQL(w io.Writer, rows []medicineRow) error {
	var b strings.Builder
	b.WriteString("-- Inventario inicial de medicamentos\n")
	b.WriteString("-- Generado desde la exportación CSV del sistema anterior\n\n")
	if len(rows) == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("INSERT INTO medicine (batch_no, drug_name, expiry_date, stock_quantity, price, sup_id, type) VALUES\n")
	for i, r := range rows {
		fmt.Fprintf(&b, "  ('%s', '%s', %s, %d, %s, %s, %s)",
			escapeSQL(r.batch), escapeSQL(r.drug), nullable(r.expiry), r.stock,
			r.price.StringFixed(2), nullable(r.supplier), nullable(r.kind))
		if i < len(rows)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (batch_no, drug_name) DO UPDATE SET\n")
	b.WriteString("  expiry_date = EXCLUDED.expiry_date,\n")
	b.WriteString("  stock_quantity = EXCLUDED.stock_quantity,\n")
	b.WriteString("  price = EXCLUDED.price;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
