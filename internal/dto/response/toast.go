package response

const (
	ToastDefault     = "default"
	ToastDestructive = "destructive"
)

// Toast is a transient notification shown by the layout's toast host.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

func NewToast(title, description string) *Toast {
	return &Toast{Title: title, Description: description, Variant: ToastDefault}
}

func NewErrorToast(title, description string) *Toast {
	return &Toast{Title: title, Description: description, Variant: ToastDestructive}
}
