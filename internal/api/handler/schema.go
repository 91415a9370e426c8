package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges a mutation with no further content.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	Username        string `json:"username"         validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	FullName        string `json:"full_name"        validate:"required"`
	Address         string `json:"address"          validate:"required"`
	PhoneNumber     string `json:"phone_number"     validate:"required"`
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role"             validate:"required,oneof=admin user"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is the full-field update payload. The password pair is
// optional; presence of either field triggers the match check in the service.
type updateUserRequest struct {
	Username        string `json:"username"         validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	FullName        string `json:"full_name"        validate:"required"`
	Address         string `json:"address"          validate:"required"`
	PhoneNumber     string `json:"phone_number"     validate:"required"`
	Role            string `json:"role"             validate:"required,oneof=admin user"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes. None of
// them carries the password hash.

type registerResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// loginUserResponse is the public profile returned on login. Email is
// intentionally absent, matching the documented login contract.
type loginUserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    loginUserResponse `json:"user"`
}

type userResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}
