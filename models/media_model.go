package models

// File -> media file received as multipart upload
type File struct {
	File interface{} `json:"file,omitempty" validate:"required"`
}

// Url -> media referenced by a remote location
type Url struct {
	Url string `json:"url,omitempty" validate:"required"`
}

// TryOnRequestBody -> expected data for a virtual try-on request
type TryOnRequestBody struct {
	ProductID string `json:"product_id" validate:"required"`
}

// TryOnOverlay describes the frame image and measurements the browser
// compositor places over the camera feed. The capture and canvas work
// happen entirely on the client.
type TryOnOverlay struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Size      FrameSize `json:"size"`
	LensColor string    `json:"lensColor,omitempty"`
}
