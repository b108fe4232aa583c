package errors

import (
	"errors"
)

// UserFriendly is what a screen shows for a failed operation.
type UserFriendly struct {
	Title    string
	Message  string
	CanRetry bool
}

// UserFacing maps any error to a fixed title, message and retryable flag.
// Server errors map by status class; network errors tell the user to check
// that the backend is reachable; everything else gets a generic retryable
// message.
func UserFacing(err error) UserFriendly {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return UserFriendly{
			Title:    "Error",
			Message:  "An unexpected error occurred.",
			CanRetry: true,
		}
	}

	switch appErr.Type {
	case ErrorTypeValidation:
		return UserFriendly{
			Title:    "Invalid Input",
			Message:  appErr.Message,
			CanRetry: false,
		}
	case ErrorTypeNetwork:
		return UserFriendly{
			Title:    "Connection Failed",
			Message:  appErr.Message,
			CanRetry: false, // no auto-retry, the user retries explicitly
		}
	case ErrorTypeServer:
		return serverUserFacing(appErr)
	case ErrorTypeStorage:
		return UserFriendly{
			Title:    "Local Storage Error",
			Message:  "Your saved session could not be read and has been reset.",
			CanRetry: false,
		}
	default:
		return UserFriendly{
			Title:    "Error",
			Message:  messageOr(appErr, "Something went wrong. Please try again."),
			CanRetry: true,
		}
	}
}

func serverUserFacing(e *AppError) UserFriendly {
	switch e.Status {
	case 400:
		return UserFriendly{
			Title:    "Invalid Request",
			Message:  messageOr(e, "The request was invalid. Please check your input."),
			CanRetry: false,
		}
	case 401:
		return UserFriendly{
			Title:    "Unauthorized",
			Message:  "Please log in again to continue.",
			CanRetry: false,
		}
	case 403:
		return UserFriendly{
			Title:    "Forbidden",
			Message:  "You do not have permission to perform this action.",
			CanRetry: false,
		}
	case 404:
		return UserFriendly{
			Title:    "Not Found",
			Message:  "The requested resource was not found.",
			CanRetry: false,
		}
	case 500:
		return UserFriendly{
			Title:    "Server Error",
			Message:  "An error occurred on the server. Please try again later.",
			CanRetry: true,
		}
	case 503:
		return UserFriendly{
			Title:    "Service Unavailable",
			Message:  "The service is temporarily unavailable. Please try again later.",
			CanRetry: true,
		}
	default:
		return UserFriendly{
			Title:    "Error",
			Message:  messageOr(e, "Something went wrong. Please try again."),
			CanRetry: true,
		}
	}
}

func messageOr(e *AppError, fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}
