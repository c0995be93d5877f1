package leytext

import "fmt"

// Report statuses. PASS requires clean structure and completeness checks;
// content flags are advisory and never fail the report.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// ContentFlag marks an article whose body text looks corrupted: too short,
// or carrying an unusually high share of non-alphanumeric characters.
type ContentFlag struct {
	ArticuloNumero int     `json:"articulo_numero"`
	BodyLength     int     `json:"body_length"`
	SymbolRatio    float64 `json:"symbol_ratio"`
	Reason         string  `json:"reason"`
}

// QualityReport is the advisory outcome of validating a parsed document.
// It is produced from a completed Document and never written back into it.
type QualityReport struct {
	Status       string        `json:"status"`
	StructureOK  bool          `json:"structure_ok"`
	Complete     bool          `json:"complete"`
	Expected     int           `json:"expected_total"`
	Found        int           `json:"found_total"`
	Missing      []int         `json:"missing"`
	Duplicates   []int         `json:"duplicates"`
	ContentFlags []ContentFlag `json:"content_flags"`
	Findings     []string      `json:"findings"`
}

// Passed reports whether the document cleared the structural and
// completeness checks.
func (r *QualityReport) Passed() bool {
	return r.Status == StatusPass
}

func (r *QualityReport) addFinding(format string, args ...any) {
	r.Findings = append(r.Findings, fmt.Sprintf(format, args...))
}
