package siteapi

// Blog is a blog entry as returned by the site api.
type Blog struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// BlogInput is the body of a blog create or update.
type BlogInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

type Reply struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// RoutinePost is a daily routine post with its replies, in server order.
type RoutinePost struct {
	ID        int     `json:"id"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Replies   []Reply `json:"replies"`
}

type ContactMessage struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

type ContactResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const ContactStatusSuccess = "success"

func (r ContactResult) Succeeded() bool {
	return r.Status == ContactStatusSuccess
}

type messageBody struct {
	Message string `json:"message"`
}
