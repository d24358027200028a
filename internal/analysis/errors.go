package analysis

import "errors"

// Typed pipeline outcomes. The HTTP layer maps these onto status codes;
// everything else is treated as an unexpected server error.
var (
	ErrInvalidReference = errors.New("unrecognized video reference")
	ErrNoComments       = errors.New("no comments found for this video")
	ErrUpstream         = errors.New("comment retrieval failed")
	ErrModelLoad        = errors.New("emotion model unavailable")
	ErrRender           = errors.New("failed to generate visualization")
)
