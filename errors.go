package erosion

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Pipeline operations. Test with errors.Is.
var (
	// ErrInvalidFrameSize is returned by PushFrame when the supplied byte
	// slice is not exactly width*height*4 bytes.
	ErrInvalidFrameSize = errors.New("erosion: invalid frame size")

	// ErrBadOperationOrder is returned when a method is called outside the
	// pipeline state that permits it (e.g. PushFrame after
	// FinishPushingFrames, or ComputeGradient before FinishPushingFrames).
	ErrBadOperationOrder = errors.New("erosion: operation not valid in current pipeline state")

	// ErrZeroFrames is returned by FinishPushingFrames when no frames were
	// ever pushed.
	ErrZeroFrames = errors.New("erosion: no frames were pushed")

	// ErrNoEnvelopes is returned by FinishPushingFrames when no pixel
	// accumulated a qualifying envelope (every pixel was either always
	// transparent or only ever noise).
	ErrNoEnvelopes = errors.New("erosion: no pixel produced a qualifying envelope")

	// ErrAllocation marks an allocation failure; wrapAllocation attaches it
	// to an underlying cause. No Pipeline operation returns it, and no
	// allocation failure moves a Pipeline into the poisoned state.
	ErrAllocation = errors.New("erosion: allocation failed")

	// ErrPoisoned is returned by PushFrame, PushGIFFrame,
	// FinishPushingFrames and ComputeGradient once a pipeline has entered
	// the poisoned state, which happens when FinishPushingFrames is called
	// with no frames pushed. Shutdown is still valid.
	ErrPoisoned = errors.New("erosion: pipeline is poisoned and must be shut down")
)

// wrapAllocation marks err as an allocation failure while preserving it for
// errors.Is/As against the original cause.
func wrapAllocation(err error) error {
	return fmt.Errorf("%w: %w", ErrAllocation, err)
}
