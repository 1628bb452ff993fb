package client

// Category is a user-defined expense category.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Contact is a saved relationship to another user.
type Contact struct {
	ID       string      `json:"id"`
	Nickname string      `json:"nickname,omitempty"`
	User     ContactUser `json:"user"`
}

type ContactUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// Participant is a person attached to a single submission, identified by email.
type Participant struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname,omitempty"`
}

type CategoryCreate struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ExpenseCreate struct {
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Amount       string        `json:"amount"`
	CategoryID   string        `json:"categoryId"`
	IsSplit      bool          `json:"isSplit"`
	Participants []Participant `json:"participants"`
}

// ExpenseUpdate carries no participants; they are fixed at creation. The
// participants key is omitted from the PUT body altogether, so the backend must
// keep the existing participants when it is absent.
type ExpenseUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
	CategoryID  string `json:"categoryId"`
	IsSplit     bool   `json:"isSplit"`
}

type BorrowLendType string

const (
	Borrow BorrowLendType = "BORROW"
	Lend   BorrowLendType = "LEND"
)

type BorrowLendCreate struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Amount       string         `json:"amount"`
	CategoryID   string         `json:"categoryId"`
	Type         BorrowLendType `json:"type"`
	Participants []Participant  `json:"participants"`
}

// BorrowLendUpdate carries no participants; they are fixed at creation. As with
// ExpenseUpdate, the participants key is omitted from the PUT body.
type BorrowLendUpdate struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Amount      string         `json:"amount"`
	CategoryID  string         `json:"categoryId"`
	Type        BorrowLendType `json:"type"`
}
