// Package expiry clasifica lotes de inventario por fecha de vencimiento.
package expiry

import (
	"errors"
	"strings"
	"time"
)

// DefaultWarnDays ventana de aviso por defecto (días).
const DefaultWarnDays = 7

// Record fila de inventario tal como la entrega el almacén. Expiry es la
// representación textual de la fecha (nil si la columna es NULL).
type Record struct {
	BatchNo  string
	DrugName string
	Expiry   *string
	Quantity int
}

// Classified lote con su fecha ya normalizada a día calendario.
type Classified struct {
	Record
	ExpiryDate time.Time
}

// Result salida de Classify. Ambos slices son disjuntos y conservan el orden de entrada.
type Result struct {
	Expired      []Classified
	ExpiringSoon []Classified
}

// Skipped cuenta lotes que no se clasificaron (sin fecha o fecha ilegible) para el log del caller.
type Skipped struct {
	NoDate  int
	BadDate int
}

var errEmptyDate = errors.New("fecha vacía")

// layouts aceptados: solo fecha y fecha-hora.
var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05.999999-07",
}

// ParseDate normaliza una fecha (solo fecha o fecha-hora) a día calendario en UTC.
// La parte horaria y el offset se descartan: cuenta el día tal como está escrito.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyDate
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Day(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Day trunca t a su día calendario (00:00 UTC del mismo año/mes/día).
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Classify separa los lotes vencidos (fecha < ref) de los que vencen en
// [ref, ref+warnDays]. Lotes sin fecha o con fecha ilegible no aparecen en ninguno.
func Classify(records []Record, ref time.Time, warnDays int) Result {
	res, _ := ClassifyWithSkipped(records, ref, warnDays)
	return res
}

// ClassifyWithSkipped igual que Classify, informando cuántos lotes se omitieron.
func ClassifyWithSkipped(records []Record, ref time.Time, warnDays int) (Result, Skipped) {
	res := Result{Expired: []Classified{}, ExpiringSoon: []Classified{}}
	var skipped Skipped

	today := Day(ref)
	until := today.AddDate(0, 0, warnDays)

	for _, r := range records {
		if r.Expiry == nil {
			skipped.NoDate++
			continue
		}
		exp, err := ParseDate(*r.Expiry)
		if err != nil {
			skipped.BadDate++
			continue
		}
		c := Classified{Record: r, ExpiryDate: exp}
		switch {
		case exp.Before(today):
			res.Expired = append(res.Expired, c)
		case !exp.After(until):
			res.ExpiringSoon = append(res.ExpiringSoon, c)
		}
	}
	return res, skipped
}

// Due consulta predefinida "vencen dentro de N días": todo lote con fecha <= ref+days,
// incluidos los ya vencidos, en el orden de entrada.
func Due(records []Record, ref time.Time, days int) []Classified {
	until := Day(ref).AddDate(0, 0, days)
	out := []Classified{}
	for _, r := range records {
		if r.Expiry == nil {
			continue
		}
		exp, err := ParseDate(*r.Expiry)
		if err != nil {
			continue
		}
		if !exp.After(until) {
			out = append(out, Classified{Record: r, ExpiryDate: exp})
		}
	}
	return out
}
