package dto

// QueryRequest is one free-text chat turn.
type QueryRequest struct {
	InputText string `json:"input_text"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

// QueryResponse carries the assistant reply and the session identifier the
// widget must echo on subsequent turns.
type QueryResponse struct {
	Reply      string `json:"reply"`
	Language   string `json:"language"`
	SessionID  string `json:"session_id"`
	State      string `json:"state"`
	ShowRating bool   `json:"show_rating"`
}

// TicketStatusRequest looks up a ticket by ID or registered mobile number.
type TicketStatusRequest struct {
	TicketID string `json:"ticket_id"`
	Language string `json:"language"`
}

// TicketStatusResponse is the lookup result. Message is the localized
// multi-field rendering.
type TicketStatusResponse struct {
	Success      bool   `json:"success"`
	Found        bool   `json:"found"`
	Message      string `json:"message"`
	TicketID     string `json:"ticket_id,omitempty"`
	Status       string `json:"status,omitempty"`
	CreatedDate  string `json:"created_date,omitempty"`
	Language     string `json:"language,omitempty"`
	SearchMethod string `json:"search_method"`
	SearchValue  string `json:"search_value"`
}

// SuggestionsResponse lists canned prompts for the widget.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Language    string   `json:"language"`
	Total       int      `json:"total"`
}

// LanguageDetail describes one supported language.
type LanguageDetail struct {
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// LanguagesResponse lists supported languages.
type LanguagesResponse struct {
	SupportedLanguages []string                  `json:"supported_languages"`
	LanguageDetails    map[string]LanguageDetail `json:"language_details"`
}
