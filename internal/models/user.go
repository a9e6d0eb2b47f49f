package models

// User is an account on the learning platform. The assessment of who the
// user is (authentication) happens outside this service; we only store
// identity and the client-managed progress blob.
type User struct {
	ID          uint   `json:"id"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"-"`
	DisplayName string `json:"display_name"`

	// ProgressData is a client-defined document replaced wholesale on
	// update, never merged field by field.
	ProgressData map[string]interface{} `json:"progress_data"`
}
