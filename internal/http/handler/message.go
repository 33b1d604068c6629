package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// flash messages shown to the user
const (
	msgLoginFirst      = "Please log in first."
	msgNotAllowed      = "You are not allowed to do that."
	msgFixErrors       = "Please correct the errors below."
	msgTryAgain        = "Something went wrong, please try again."
	msgBadCredentials  = "Invalid username/password."
	msgUsernameTaken   = "Username is already taken."
	msgWelcome         = "Welcome! Your account has been created."
	msgWelcomeBack     = "Welcome back, %s!"
	msgLoginAfterSetup = "Your account has been created. Please log in."
	msgLoggedOut       = "You have been logged out."
	msgAccountDeleted  = "Your account has been deleted."
	msgFeedbackAdded   = "Feedback added."
	msgFeedbackUpdated = "Feedback updated."
	msgFeedbackDeleted = "Feedback deleted."
)

const (
	flashSuccess = "success"
	flashDanger  = "danger"
	flashWarning = "warning"
)
