package locale

import "regexp"

func englishCatalog() *Catalog {
	return &Catalog{
		Code:       "en",
		Name:       "English",
		NativeName: "English",
		Messages: map[string]string{
			"welcome":            "Welcome to Maha Aastha Grievance Redressal System AI-ChatBot.",
			"initial_question":   "Would you like to register a Ticket on the Maha Aastha Grievance Redressal System?",
			"status_question":    "Would you like to check the status of the ticket which you have registered on the Maha Aastha Grievance Redressal System?",
			"ticket_id_prompt":   "Please enter your Ticket ID (For example: \"TKT-12345678\")",
			"mobile_prompt":      "Or enter your registered mobile number (Example: 9876543210)",
			"feedback_question":  "Would you like to provide feedback regarding the resolution of your ticket addressed through the Maha Aastha Grievance Redressal System?",
			"rating_question":    "Please rate your experience with the Maha Aastha Grievance Redressal System:",
			"rating_request":     "Rate from 1 (Poor) to 5 (Excellent)",
			"invalid_rating":     "The information you have entered is invalid. Please try again.",
			"rating_thank_you":   "Thank you for your feedback. Your rating has been recorded.",
			"rating_failed":      "Failed to save your rating. Please try again.",
			"ticket_not_found":   "Sorry, no ticket found with the provided ID. Please check your Ticket ID and try again.",
			"mobile_not_found":   "Sorry, no ticket found for mobile number %s. Please check your registered mobile number and try again.",
			"database_error":     "Unable to fetch ticket information at the moment. Please try again later.",
			"invalid_identifier": "Please provide a valid Ticket ID or 10-digit mobile number.",
			"yes_label":          "YES",
			"no_label":           "NO",
			"registration_intro": "You can register your Ticket on the Maha Aastha Grievance Redressal System through below link:",
			"thank_you":          "Thank you for using the Maha Aastha Grievance Redressal System.",
			"help_text":          "Please type 'YES' or 'NO' to proceed with your query.",
			"track_ticket_help":  "You can also track your ticket status at: %s",
			"language_switched":  "Language switched to English.",
			"status_header":      "The current status of your Ticket is as follows:",
			"found_by_mobile":    "Found using mobile number: %s",
			"label_ticket":       "Ticket ID",
			"label_status":       "Status",
			"label_created":      "Created",
			"label_employee":     "Employee Name",
			"label_category":     "Category",
			"label_district":     "District",
			"label_office":       "Office",
			"label_subject":      "Subject",
			"label_updated":      "Last Updated",
			"value_missing":      "N/A",
			"greet_good_morning": "Good Morning!",
			"greet_good_noon":    "Good Afternoon!",
			"greet_good_evening": "Good Evening!",
			"greet_good_night":   "Good Night!",
			"greet_hello":        "Hello!",
			"welcome_script": "Welcome to Maha Aastha Grievance Redressal System AI-ChatBot.\n" +
				"Question 1: Would you like to register a Ticket on the Maha Aastha Grievance Redressal System?\n" +
				"Answer 1: \"YES\"\nAnswer 2: \"NO\"\n" +
				"Question 2: Would you like to check the status of the ticket which you have registered on the Maha Aastha Grievance Redressal System?\n" +
				"Answer: Type \"Check Status\" or enter your Ticket ID\nExample: TKT-12345678",
			"register_script": "Question 1: Would you like to register a Ticket on the Maha Aastha Grievance Redressal System?\n" +
				"Answer 1: \"YES\"\nAnswer 2: \"NO\"",
			"status_script": "Question 2: Would you like to check the status of the ticket which you have registered on the Maha Aastha Grievance Redressal System?\n" +
				"Answer 1: \"YES\"\nAnswer 2: \"NO\"",
			"feedback_script": "Question 2.2: Would you like to provide feedback regarding the resolution of your ticket addressed through the Maha Aastha Grievance Redressal System?\n" +
				"Answer 1: \"YES\"\nAnswer 2: \"NO\"",
			"rating_script": "Please rate your experience with the Maha Aastha Grievance Redressal System:\n" +
				"Rate from 1 (Poor) to 5 (Excellent)\n" +
				"1 - Poor\n2 - Fair\n3 - Good\n4 - Very Good\n5 - Excellent",
		},
		GreetingRe: []GreetingPattern{
			{regexp.MustCompile(`(?i)\bgood\s*morning\b`), "greet_good_morning"},
			{regexp.MustCompile(`(?i)\bgood\s*afternoon\b`), "greet_good_noon"},
			{regexp.MustCompile(`(?i)\bgood\s*evening\b`), "greet_good_evening"},
			{regexp.MustCompile(`(?i)\bgood\s*night\b`), "greet_good_night"},
			{regexp.MustCompile(`(?i)\b(hello|hey+|hii+|hi)\b`), "greet_hello"},
		},
		YesPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\byes\b`),
			regexp.MustCompile(`(?i)\by\b`),
			regexp.MustCompile(`(?i)\byeah\b`),
			regexp.MustCompile(`(?i)\byep\b`),
		},
		NoPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bno\b`),
			regexp.MustCompile(`(?i)\bn\b`),
			regexp.MustCompile(`(?i)\bnope\b`),
		},
		IntentGroups: []IntentGroup{
			{Intent: IntentStatus, Tokens: []string{"check status", "status", "track"}},
			{Intent: IntentFeedback, Tokens: []string{"feedback", "rating", "rate"}},
			{Intent: IntentRegister, Tokens: []string{"register", "ticket", "complaint", "grievance"}},
		},
		RatingLabels: map[int]string{
			1: "Poor", 2: "Fair", 3: "Good", 4: "Very Good", 5: "Excellent",
		},
		Suggestions: []string{
			"I want to register a ticket",
			"Would you like to check the status of the ticket which you have registered on the Maha Aastha Grievance Redressal System?",
			"Check status TKT-12345678",
			"Has a Ticket already been registered on the Maha Aastha Grievance Redressal System?",
			"Would you like to provide feedback regarding the resolution of your ticket addressed through the Maha Aastha Grievance Redressal System?",
		},
	}
}
