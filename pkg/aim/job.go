package aim

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/rotation"
)

// Job is one projection request, as read from a job file
type Job struct {
	Name        string               `json:"name,omitempty"`
	Distance    float64              `json:"distance"`
	Position    linalg.Vector3       `json:"position"`
	Orientation rotation.Orientation `json:"orientation"`
	Camera      CameraAngles         `json:"camera"`
	// Boresight is an optional row-major 3x3 mounting correction
	Boresight [][]float64 `json:"boresight,omitempty"`
}

// Projector builds the projector for this job. It fails if the boresight
// matrix is not 3x3.
func (j Job) Projector(solver *rotation.Solver) (*Projector, error) {
	p := &Projector{Solver: solver}
	if j.Boresight != nil {
		m, err := linalg.MatrixFromSlice(j.Boresight)
		if err != nil {
			return nil, errors.Wrapf(err, "job %q: boresight", j.Name)
		}
		p.Boresight = &m
	}
	return p, nil
}

// ReadJobs decodes a JSON array of jobs
func ReadJobs(r io.Reader) ([]Job, error) {
	var jobs []Job
	if err := json.NewDecoder(r).Decode(&jobs); err != nil {
		return nil, errors.Wrap(err, "decoding jobs")
	}
	return jobs, nil
}
