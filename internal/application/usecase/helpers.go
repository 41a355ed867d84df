package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/expiry"
	"github.com/jhoicas/farmacia-api/pkg/validator"
)

const dateLayout = "2006-01-02"

// validate corre las etiquetas validate del DTO y devuelve ErrInvalidInput con el detalle.
func validate(in any) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}
	return nil
}

// optionalDate interpreta una fecha opcional (solo fecha o fecha-hora); vacío = nil.
func optionalDate(field, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := expiry.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q no es una fecha", domain.ErrInvalidInput, field, s)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
