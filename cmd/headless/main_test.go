package main

import (
	"testing"

	"go.viam.com/test"

	"gimbalaim/pkg/aim"
	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/rotation"
)

func TestPreviewSceneUsesSolverTolerance(t *testing.T) {
	job := aim.Job{
		Distance:    10,
		Position:    linalg.NewVector3(1, 2, 3),
		Orientation: rotation.Orientation{Pitch: 1e-3},
	}
	results, err := aim.ProjectAll([]aim.Job{job}, &rotation.Solver{Tolerance: 0.01}, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, results, test.ShouldHaveLength, 1)

	scene := previewScene(results[0], &rotation.Solver{Tolerance: 0.01})
	test.That(t, scene.Position, test.ShouldResemble, job.Position)
	test.That(t, scene.Target, test.ShouldResemble, linalg.NewVector3(11, 2, 3))
	test.That(t, scene.Heading, test.ShouldResemble, aim.Forward)
	test.That(t, scene.Heading, test.ShouldResemble, results[0].Direction)

	scene = previewScene(results[0], rotation.NewSolver())
	test.That(t, scene.Heading.Z, test.ShouldBeLessThan, 0)
}
