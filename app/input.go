package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/optimeet/optimeet/core/model"
)

// Problem is the JSON input format of one optimization: the qualified
// requests and the host availability snapshot.
type Problem struct {
	Requests []model.MeetingRequest `json:"requests"`
	Hosts    []model.Host           `json:"hosts"`
}

// LoadProblem reads a problem definition from a JSON file. Submission order
// is stamped from the file order when absent.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Problem
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i := range p.Requests {
		if p.Requests[i].Submitted == 0 {
			p.Requests[i].Submitted = i
		}
	}
	return &p, nil
}
