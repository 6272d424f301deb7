package dto

// RegisterDTO binds the multipart registration form. ProfileImage is
// filled in by the handler after the uploaded file has been stored.
type RegisterDTO struct {
	Email           string `form:"email" binding:"required" validate:"required,email"`
	Password        string `form:"password" binding:"required" validate:"min=6,max=72"`
	PasswordConfirm string `form:"passwordConfirm" binding:"required"`
	Nickname        string `form:"nickname" binding:"required" validate:"min=1,max=20"`
	ProfileImage    string `form:"-"`
}

// CredentialDTO is the login body.
type CredentialDTO struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileDTO carries the editable profile fields. Nil means
// "leave unchanged"; ProfileImage is handler-filled after upload.
type UpdateProfileDTO struct {
	Nickname     *string `form:"nickname" validate:"omitempty,min=1,max=20"`
	ProfileImage *string `form:"-"`
}

// ChangePasswordDTO is the password-update body.
type ChangePasswordDTO struct {
	Password        string `json:"password" binding:"required" validate:"min=6,max=72"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
}

// UserDTO is the outward user shape. The password hash never leaves
// the service layer.
type UserDTO struct {
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// NicknameCheckDTO reports nickname availability.
type NicknameCheckDTO struct {
	Available bool `json:"available"`
}
