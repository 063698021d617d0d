package validators

import (
	"net/http"
	"strings"

	"github.com/installplanhq/installplan-backend/internal/calendar"
	pkgerrors "github.com/installplanhq/installplan-backend/pkg/errors"
)

// ParseQueryDay reads a YYYY-MM-DD query parameter. An absent optional
// parameter yields an empty string.
func ParseQueryDay(r *http.Request, key string, required bool) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		if required {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
		}
		return "", nil
	}
	if !calendar.IsDayKey(raw) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a YYYY-MM-DD date").WithDetails(map[string]any{"field": key})
	}
	return raw, nil
}
