package api

// Wire types for the Estud.IA backend. Field names follow the backend's JSON
// contract; timestamps stay as the backend's RFC 3339 strings because the
// client never does date arithmetic on them.

type User struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Lastname        string `json:"lastname"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type Notebook struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`

	Sources    []Source    `json:"sources,omitempty"`
	Messages   []Message   `json:"messages,omitempty"`
	Summaries  []Summary   `json:"summaries,omitempty"`
	Flashcards []Flashcard `json:"flashcards,omitempty"`
	Quizzes    []Quiz      `json:"quizzes,omitempty"`
}

type Source struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NotebookID int64  `json:"notebook_id"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type Message struct {
	ID            int64  `json:"id"`
	NotebookID    int64  `json:"notebook_id"`
	IsUserMessage bool   `json:"is_user_message"`
	Text          string `json:"text"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

type Flashcard struct {
	ID         int64  `json:"id"`
	NotebookID int64  `json:"notebook_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type Summary struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	NotebookID int64  `json:"notebook_id"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type Quiz struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	NotebookID int64  `json:"notebook_id"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`

	Questions []Question `json:"questions_and_answers"`
}

// Question is a quiz question together with its answer key. The three
// incorrect answers are stored separately; shuffling the four choices is a
// presentation concern and never touches these fields.
type Question struct {
	ID               int64  `json:"id"`
	Question         string `json:"question"`
	Answer           string `json:"answer"`
	IncorrectAnswer1 string `json:"incorrect_answer_1"`
	IncorrectAnswer2 string `json:"incorrect_answer_2"`
	IncorrectAnswer3 string `json:"incorrect_answer_3"`
	QuizID           int64  `json:"quiz_id"`
}
