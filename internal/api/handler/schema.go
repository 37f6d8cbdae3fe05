package handler

// dataResponse is the standard success envelope: a human-readable message
// plus the affected record.
type dataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// listResponse extends the envelope with pagination bookkeeping.
type listResponse struct {
	Message    string      `json:"message"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"totalPages"`
	Data       interface{} `json:"data"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginData struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Data    loginData `json:"data"`
	Token   string    `json:"token"`
}

// --- Customers ---

// customerRequest is shared by create and update; both require the full
// field set.
type customerRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	Name          string `json:"name"           validate:"required"`
	Phone         string `json:"phone"          validate:"required"`
	Branch        string `json:"branch"         validate:"required"`
}

// --- System users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	RoleID   int64  `json:"role_id"  validate:"required"`
}

// updateUserRequest omits the required tag on password: absence means
// "leave unchanged".
type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	RoleID   int64  `json:"role_id"  validate:"required"`
}
