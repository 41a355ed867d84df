// Package notification deriva los identificadores secuenciales de notificación
// (N001, N002, ...).
package notification

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/farmacia-api/internal/domain"
)

const (
	// Prefix carácter literal de todo NID.
	Prefix = "N"
	// MaxSequence último número representable con 3 dígitos.
	MaxSequence = 999
	// FirstID primer identificador de la secuencia.
	FirstID = "N001"
)

// ParsedID resultado explícito de interpretar un NID almacenado.
type ParsedID struct {
	Seq int
	OK  bool
}

// ParseID interpreta el sufijo numérico (todo después de la posición 0).
// Solo exige que el sufijo sea un entero no negativo; el primer carácter no se valida.
func ParseID(id string) ParsedID {
	if len(id) < 2 {
		return ParsedID{}
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil || n < 0 {
		return ParsedID{}
	}
	return ParsedID{Seq: n, OK: true}
}

// FormatID da formato N + 3 dígitos con ceros a la izquierda.
func FormatID(seq int) (string, error) {
	if seq < 1 || seq > MaxSequence {
		return "", fmt.Errorf("%w: %d fuera de 1..%d", domain.ErrSequenceExhausted, seq, MaxSequence)
	}
	return fmt.Sprintf("%s%03d", Prefix, seq), nil
}

// NextID calcula el identificador siguiente a last ("" si no hay notificaciones).
// Un last ilegible reinicia en N001 sin error; agotar N999 devuelve domain.ErrSequenceExhausted.
func NextID(last string) (string, error) {
	if last == "" {
		return FirstID, nil
	}
	parsed := ParseID(last)
	if !parsed.OK {
		return FirstID, nil
	}
	return FormatID(parsed.Seq + 1)
}
