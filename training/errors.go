package training

import "errors"

var (
	// ErrInvalidConfig indicates a Config that fails validation.
	ErrInvalidConfig = errors.New("training: invalid configuration")
	// ErrNotInitialized is returned by DoStep before InitSimulation.
	ErrNotInitialized = errors.New("training: simulation not initialized")
	// ErrFinished is returned by DoStep once the run has ended.
	ErrFinished = errors.New("training: run already finished")
	// ErrCurriculumExhausted indicates that no operator could spend any of
	// the level budget. The run cannot continue.
	ErrCurriculumExhausted = errors.New("training: curriculum made no progress on level change")
)
