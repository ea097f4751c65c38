package request

// RegisterRequest is the request body for registering a brawler
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UploadAvatarRequest is the request body for uploading an avatar
type UploadAvatarRequest struct {
	ImageBase64 string `json:"image_base64"`
}

// CreateMissionRequest is the request body for creating a mission
type CreateMissionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
