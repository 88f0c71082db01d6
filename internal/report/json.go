package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/passmeter/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...Option) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output, opts)}
}

// assessmentJSON adds the password to an assessment when it may be shown.
type assessmentJSON struct {
	Password string `json:"password,omitempty"`
	model.Assessment
}

// WriteAssessments outputs a single assessment as an object and several as an array.
func (w *JSONWriter) WriteAssessments(assessments []model.Assessment) (int, error) {
	out := make([]assessmentJSON, len(assessments))
	for i, a := range assessments {
		out[i] = assessmentJSON{Assessment: a}
		if w.showPassword {
			out[i].Password = a.Password
		}
	}
	if len(out) == 1 {
		return w.writeJSON(out[0])
	}
	return w.writeJSON(out)
}

// WriteAudit outputs the audit summary.
func (w *JSONWriter) WriteAudit(summary *model.AuditSummary) (int, error) {
	return w.writeJSON(summary)
}

// WriteDiff outputs the audit comparison.
func (w *JSONWriter) WriteDiff(diff *model.AuditDiff) (int, error) {
	return w.writeJSON(diff)
}

// writeJSON marshals v and writes it with a trailing newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
