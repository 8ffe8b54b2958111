package domain

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeDanger  NoticeKind = "danger"
)

// Notice is a transient user notification. Action, when set, is invoked if
// the user triggers the notice's optional action.
type Notice struct {
	ID          string
	Title       string
	Message     string
	Kind        NoticeKind
	ActionLabel string
	Action      func()
}
