package streak

import "errors"

var (
	// ErrProjectionFailed is returned by a Projector that cannot map a world
	// point to the screen. The tracker treats the object as off-screen.
	ErrProjectionFailed = errors.New("streak: projection failed")

	// ErrReprojectionFailed reports that a trail endpoint could not be mapped
	// back into world space. The attachment offset and beam widths are reset.
	ErrReprojectionFailed = errors.New("streak: reprojection failed")

	// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
	ErrInvalidConfig = errors.New("streak: invalid config")
)
