package dto

type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// UploadFile is an in-memory multipart upload handed from handler to service.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
