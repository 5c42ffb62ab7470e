package domain

// NotificationKind is the toast variant shown by the host
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationFailure NotificationKind = "failure"
)

// Notification is a message for the guest emitted by the booking flow
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

// SubmitFailedNotification is shown when required fields are missing on submit
func SubmitFailedNotification() Notification {
	return Notification{Kind: NotificationFailure, Title: MsgSubmitFailedTitle, Message: MsgSubmitFailedBody}
}

// SubmitSucceededNotification is shown after the booking request is accepted
func SubmitSucceededNotification() Notification {
	return Notification{Kind: NotificationSuccess, Title: MsgSubmitSucceededTitle, Message: MsgSubmitSucceededBody}
}
