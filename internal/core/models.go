package core

// Identity is who the current request acts as. The zero value is anonymous.
type Identity struct {
	Username string
}

func (i Identity) Authenticated() bool {
	return i.Username != ""
}

type User struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

type Feedback struct {
	ID            uint
	Title         string
	Content       string
	OwnerUsername string
}

type Profile struct {
	User     User
	Feedback []Feedback
}

type RegisterMessage struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type FeedbackMessage struct {
	Title   string
	Content string
}
