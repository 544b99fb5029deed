package pipeline

import "errors"

// ErrInitialPoseNotFound is returned when every initial-pose strategy
// (the configured D variant, and S as a last resort) fails to produce a
// placement.
var ErrInitialPoseNotFound = errors.New("pipeline: initial pose not found")

// ErrInvalidFinalPose is returned by the defensive post-A validity check.
var ErrInvalidFinalPose = errors.New("pipeline: final pose failed validation")
