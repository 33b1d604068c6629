package payload

import (
	"errors"
	"feedback/internal/core"
	"net/url"
	"regexp"
	"strings"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// bcrypt ignores everything past 72 bytes
const maxPasswordBytes = 72

var errPasswordTooLong = errors.New("password cannot be over 72 bytes long")

// usernames end up as a path segment of /users/{username}
var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)

type RegisterForm struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (f *RegisterForm) Bind(values url.Values) {
	f.Username = strings.TrimSpace(values.Get("username"))
	f.Password = values.Get("password")
	f.Email = strings.TrimSpace(values.Get("email"))
	f.FirstName = strings.TrimSpace(values.Get("first_name"))
	f.LastName = strings.TrimSpace(values.Get("last_name"))
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username,
			validation.Required.Error("username cannot be blank"),
			validation.RuneLength(0, 20).Error("username cannot be over 20 characters long"),
			validation.Match(usernamePattern).Error("username may only contain letters, numbers, - and _"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password cannot be blank"),
			validation.By(passwordLength),
		),
		validation.Field(&f.Email,
			validation.Required.Error("email cannot be blank"),
			is.EmailFormat.Error("not a valid email"),
			validation.RuneLength(0, 50).Error("email cannot be over 50 characters long"),
		),
		validation.Field(&f.FirstName,
			validation.Required.Error("first name cannot be blank"),
			validation.RuneLength(0, 30).Error("first name cannot be over 30 characters long"),
		),
		validation.Field(&f.LastName,
			validation.Required.Error("last name cannot be blank"),
			validation.RuneLength(0, 30).Error("last name cannot be over 30 characters long"),
		),
	)
}

func (f RegisterForm) ToRegisterMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username:  f.Username,
		Password:  f.Password,
		Email:     f.Email,
		FirstName: f.FirstName,
		LastName:  f.LastName,
	}
}

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (f *LoginForm) Bind(values url.Values) {
	f.Username = strings.TrimSpace(values.Get("username"))
	f.Password = values.Get("password")
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username,
			validation.Required.Error("username cannot be blank"),
			validation.RuneLength(0, 20).Error("username cannot be over 20 characters long"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password cannot be blank"),
		),
	)
}

type FeedbackForm struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (f *FeedbackForm) Bind(values url.Values) {
	f.Title = strings.TrimSpace(values.Get("title"))
	f.Content = strings.TrimSpace(values.Get("content"))
}

func (f FeedbackForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("title cannot be blank"),
			validation.RuneLength(0, 100).Error("title cannot be over 100 characters long"),
		),
		validation.Field(&f.Content,
			validation.Required.Error("feedback cannot be blank"),
		),
	)
}

func (f FeedbackForm) ToFeedbackMessage() core.FeedbackMessage {
	return core.FeedbackMessage{
		Title:   f.Title,
		Content: f.Content,
	}
}

func passwordLength(value any) error {
	s, _ := value.(string)
	if len(s) > maxPasswordBytes {
		return errPasswordTooLong
	}
	return nil
}
