package offline

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)

// Notice is a short user-facing message about the outcome of a write.
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
}

type Notifier interface {
	Notify(Notice)
}

type NotifierFunc func(Notice)

func (fn NotifierFunc) Notify(notice Notice) { fn(notice) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
