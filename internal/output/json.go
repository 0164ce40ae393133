package output

import (
	"encoding/json"

	"github.com/weijiayao/finance-tracker/internal/domain"
)

// JSONFormatter emits the whole report as indented JSON. Optional fields are
// omitted rather than zeroed, mirroring the domain's absence semantics.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
