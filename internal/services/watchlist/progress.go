package watchlist

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Progress tracks how far through an item the user is, as a current/total
// pair. The full-progress marker {1,1} stands in for the "Completed" string
// some clients send.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

var progressPattern = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)

// FullProgress is stored when a client reports progress as "Completed".
func FullProgress() Progress {
	return Progress{Current: 1, Total: 1}
}

// ParseProgress turns a display string into a Progress pair. "Completed"
// maps to the full-progress marker, "12/24" is parsed into {12, 24} and
// anything else falls back to {0, 0}.
func ParseProgress(s string) Progress {
	if strings.EqualFold(strings.TrimSpace(s), "Completed") {
		return FullProgress()
	}

	if match := progressPattern.FindStringSubmatch(s); match != nil {
		current, _ := strconv.Atoi(match[1])
		total, _ := strconv.Atoi(match[2])
		return Progress{Current: current, Total: total}
	}

	return Progress{}
}

// String renders the pair in the same "current/total" form ParseProgress
// accepts, so parse -> format -> parse is stable.
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d", p.Current, p.Total)
}

// UnmarshalJSON accepts either the structured object form or the string forms
// described on ParseProgress. Anything else decodes to {0, 0}.
func (p *Progress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParseProgress(s)
		return nil
	}

	var obj struct {
		Current int `json:"current"`
		Total   int `json:"total"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*p = Progress{Current: obj.Current, Total: obj.Total}
		return nil
	}

	*p = Progress{}
	return nil
}
