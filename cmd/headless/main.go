package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gimbalaim/pkg/aim"
	"gimbalaim/pkg/format"
	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/raster"
	"gimbalaim/pkg/rotation"
)

func main() {
	yaw := flag.Float64("yaw", 0, "Platform yaw in degrees (around Z)")
	pitch := flag.Float64("pitch", 0, "Platform pitch in degrees (around Y)")
	roll := flag.Float64("roll", 0, "Platform roll in degrees (around X)")
	camYaw := flag.Float64("cam-yaw", 0, "Camera gimbal yaw offset in degrees")
	camPitch := flag.Float64("cam-pitch", 0, "Camera gimbal pitch offset in degrees")
	distance := flag.Float64("distance", 1, "Distance along the line of sight")
	x := flag.Float64("x", 0, "Platform position X")
	y := flag.Float64("y", 0, "Platform position Y")
	z := flag.Float64("z", 0, "Platform position Z")
	jobsFile := flag.String("jobs", "", "JSON file with an array of jobs; overrides the single-job flags")
	workers := flag.Int("workers", 0, "Workers for batch projection (0 = one per CPU)")
	tolerance := flag.Float64("tolerance", rotation.DefaultTolerance, "Values below this count as zero")
	pngFile := flag.String("png", "", "Write a preview of the first job to this PNG file")
	trace := flag.Bool("trace", false, "Log every rotation step")
	flag.Parse()

	solver := &rotation.Solver{Tolerance: *tolerance}
	if *trace {
		solver.Logger = log.New(os.Stderr, "rotation: ", 0)
	}

	var jobs []aim.Job
	if *jobsFile != "" {
		f, err := os.Open(*jobsFile)
		if err != nil {
			log.Fatalf("Failed to open jobs file: %v", err)
		}
		jobs, err = aim.ReadJobs(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *jobsFile, err)
		}
		fmt.Printf("Loaded %d jobs from %s\n", len(jobs), *jobsFile)
	} else {
		jobs = []aim.Job{{
			Distance:    *distance,
			Position:    linalg.NewVector3(*x, *y, *z),
			Orientation: rotation.Orientation{Yaw: *yaw, Pitch: *pitch, Roll: *roll},
			Camera:      aim.CameraAngles{Yaw: *camYaw, Pitch: *camPitch},
		}}
	}

	results, err := aim.ProjectAll(jobs, solver, *workers)
	if err != nil {
		log.Fatalf("Projection failed: %v", err)
	}
	for _, r := range results {
		fmt.Println(format.Result(r))
	}

	if *pngFile == "" || len(results) == 0 {
		return
	}

	scene := previewScene(results[0], solver)
	img := raster.Render(scene, raster.Fit(scene, raster.DefaultView(640, 480)))

	file, err := os.Create(*pngFile)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := raster.WritePNG(file, img); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}
	fmt.Printf("Preview saved as %s\n", *pngFile)
}

// previewScene builds the PNG scene for r, rotating the heading with the
// same solver as the projection.
func previewScene(r aim.Result, solver *rotation.Solver) raster.Scene {
	projector := &aim.Projector{Solver: solver}
	return raster.Scene{
		Position: r.Job.Position,
		Target:   r.Point,
		Heading:  projector.Heading(r.Job.Orientation),
	}
}
