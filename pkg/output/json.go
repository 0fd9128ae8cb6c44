package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/types"
)

type statsDoc struct {
	Total      int   `json:"total"`
	Moved      int   `json:"moved"`
	Unmatched  int   `json:"unmatched"`
	Skipped    int   `json:"skipped"`
	Failed     int   `json:"failed"`
	BytesMoved int64 `json:"bytes_moved"`
}

type errorDoc struct {
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type outcomeDoc struct {
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Status    string    `json:"status"`
	RuleIndex *int      `json:"rule_index,omitempty"`
	Rule      string    `json:"rule,omitempty"`
	Target    string    `json:"target,omitempty"`
	Renamed   bool      `json:"renamed,omitempty"`
	Overwrote bool      `json:"overwrote,omitempty"`
	Error     *errorDoc `json:"error,omitempty"`
}

type resultDoc struct {
	RunID      string       `json:"run_id"`
	Source     string       `json:"source"`
	Recursive  bool         `json:"recursive"`
	StartedAt  time.Time    `json:"started_at"`
	DurationMS int64        `json:"duration_ms"`
	Stats      statsDoc     `json:"stats"`
	Files      []outcomeDoc `json:"files"`
	Error      *errorDoc    `json:"error,omitempty"`
}

type classificationDoc struct {
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	Matched     bool      `json:"matched"`
	RuleIndex   *int      `json:"rule_index,omitempty"`
	Rule        string    `json:"rule,omitempty"`
	Destination string    `json:"destination,omitempty"`
	Error       *errorDoc `json:"error,omitempty"`
}

type ruleDoc struct {
	Index       int    `json:"index"`
	Pattern     string `json:"pattern"`
	Kind        string `json:"kind"`
	Destination string `json:"destination"`
}

func newErrorDoc(err error) *errorDoc {
	if err == nil {
		return nil
	}
	return &errorDoc{
		Code:    errorCode(err),
		Message: err.Error(),
		Details: errors.GetErrorDetails(err),
	}
}

func indexPtr(i int) *int {
	if i < 0 {
		return nil
	}
	return &i
}

func newResultDoc(result *types.SortResult, runErr error) resultDoc {
	s := result.Stats()
	doc := resultDoc{
		RunID:      result.RunID,
		Source:     result.Source,
		Recursive:  result.Recursive,
		StartedAt:  result.StartedAt,
		DurationMS: result.Duration().Milliseconds(),
		Stats: statsDoc{
			Total:      s.Total,
			Moved:      s.Moved,
			Unmatched:  s.Unmatched,
			Skipped:    s.Skipped,
			Failed:     s.Failed,
			BytesMoved: s.BytesMoved,
		},
		Files: make([]outcomeDoc, 0, len(result.Outcomes)),
		Error: newErrorDoc(runErr),
	}

	for _, o := range result.Outcomes {
		od := outcomeDoc{
			Path:      o.File.Path,
			Size:      o.File.Size,
			Status:    string(o.Status),
			RuleIndex: indexPtr(o.RuleIndex),
			Target:    o.Target,
			Renamed:   o.Renamed,
			Overwrote: o.Overwrote,
			Error:     newErrorDoc(o.Err),
		}
		if o.RuleIndex >= 0 {
			od.Rule = o.Rule.Label()
		}
		doc.Files = append(doc.Files, od)
	}
	return doc
}

func newClassificationDocs(items []Classification) []classificationDoc {
	docs := make([]classificationDoc, 0, len(items))
	for _, item := range items {
		d := classificationDoc{
			Path:    item.File.Path,
			Size:    item.File.Size,
			Matched: item.Decision.Matched,
			Error:   newErrorDoc(item.Err),
		}
		if item.Decision.Matched {
			d.RuleIndex = indexPtr(item.Decision.Index)
			d.Rule = item.Decision.Rule.Label()
			d.Destination = item.Decision.Destination
		}
		docs = append(docs, d)
	}
	return docs
}

func newRuleDocs(infos []rules.RuleInfo) []ruleDoc {
	docs := make([]ruleDoc, 0, len(infos))
	for _, info := range infos {
		docs = append(docs, ruleDoc{
			Index:       info.Index,
			Pattern:     info.Rule.Label(),
			Kind:        string(info.Kind),
			Destination: info.Rule.Destination,
		})
	}
	return docs
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
