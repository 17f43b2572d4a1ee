package locale

import "regexp"

func marathiCatalog() *Catalog {
	return &Catalog{
		Code:       "mr",
		Name:       "Marathi",
		NativeName: "मराठी",
		Messages: map[string]string{
			"welcome":            "नमस्कार, महा आस्था तक्रार निवारण प्रणाली एआय-चॅटबॉटमध्ये आपले स्वागत आहे.",
			"initial_question":   "महा आस्था तक्रार निवारण प्रणालीमध्ये आपण तिकीट नोंदवू इच्छिता का?",
			"status_question":    "आपण महा आस्था तक्रार निवारण प्रणालीमध्ये नोंदवलेल्या तिकीटची स्थिती तपासू इच्छिता का?",
			"ticket_id_prompt":   "कृपया आपला तिकीट क्रमांक प्रविष्ट करा (उदाहरणार्थ: \"TKT-12345678\")",
			"mobile_prompt":      "किंवा आपला नोंदणीकृत मोबाइल नंबर प्रविष्ट करा (उदाहरणार्थ: 9876543210)",
			"feedback_question":  "महा आस्था तक्रार निवारण प्रणालीद्वारे सोडविण्यात आलेल्या आपल्या तिकीटच्या निराकरणाबाबत अभिप्राय द्यायला इच्छिता का?",
			"rating_question":    "कृपया महा आस्था तक्रार निवारण प्रणालीच्या अनुभवाला रेटिंग द्या:",
			"rating_request":     "१ (खराब) ते ५ (उत्कृष्ट) पर्यंत रेटिंग द्या",
			"invalid_rating":     "आपण दिलेली माहिती अवैध आहे. कृपया पुन्हा प्रयत्न करा.",
			"rating_thank_you":   "आपल्या अभिप्रायाबद्दल धन्यवाद. आपले रेटिंग नोंदवले गेले आहे.",
			"rating_failed":      "आपले रेटिंग जतन करण्यात अयशस्वी. कृपया पुन्हा प्रयत्न करा.",
			"ticket_not_found":   "माफ करा, दिलेल्या क्रमांकाशी कोणतीही तिकीट आढळली नाही. कृपया आपला तिकीट क्रमांक तपासा आणि पुन्हा प्रयत्न करा.",
			"mobile_not_found":   "माफ करा, %s या मोबाइल नंबरसाठी कोणतीही तिकीट आढळली नाही. कृपया आपला नोंदणीकृत मोबाइल नंबर तपासा आणि पुन्हा प्रयत्न करा.",
			"database_error":     "सध्या तिकीट माहिती मिळवता येत नाही. कृपया नंतर प्रयत्न करा.",
			"invalid_identifier": "कृपया योग्य तिकीट क्रमांक किंवा 10-अंकी मोबाइल नंबर प्रदान करा.",
			"yes_label":          "होय",
			"no_label":           "नाही",
			"registration_intro": "आपण महा आस्था तक्रार निवारण प्रणालीमध्ये आपली तिकीट खालील लिंकद्वारे नोंदवू शकता:",
			"thank_you":          "महा आस्था तक्रार निवारण प्रणालीचा वापर केल्याबद्दल आपले धन्यवाद.",
			"help_text":          "कृपया 'होय' किंवा 'नाही' टाइप करून आपल्या प्रश्नासह पुढे जा.",
			"track_ticket_help":  "आपण आपल्या तिकीटची स्थिती येथे देखील तपासू शकता: %s",
			"language_switched":  "भाषा मराठीमध्ये बदलली आहे.",
			"status_header":      "आपल्या तिकीटची सद्यस्थिती खालीलप्रमाणे आहे:",
			"found_by_mobile":    "मोबाइल नंबरद्वारे शोधले गेले: %s",
			"label_ticket":       "तिकीट क्रमांक",
			"label_status":       "स्थिती",
			"label_created":      "दाखल दिनांक",
			"label_employee":     "कर्मचारी नाव",
			"label_category":     "श्रेणी",
			"label_district":     "जिल्हा",
			"label_office":       "कार्यालय",
			"label_subject":      "विषय",
			"label_updated":      "शेवटचा अद्यतन",
			"value_missing":      "निर्दिष्ट नाही",
			"greet_good_morning": "शुभ सकाळ!",
			"greet_good_noon":    "शुभ दुपार!",
			"greet_good_evening": "शुभ संध्याकाळ!",
			"greet_good_night":   "शुभ रात्री!",
			"greet_hello":        "",
			"welcome_script": "नमस्कार, महा आस्था तक्रार निवारण प्रणाली एआय-चॅटबॉटमध्ये आपले स्वागत आहे.\n" +
				"प्रश्न क्र. १: महा आस्था तक्रार निवारण प्रणालीमध्ये आपण तिकीट नोंदवू इच्छिता का?\n" +
				"उत्तर १ - \"होय\"\nउत्तर २ - \"नाही\"\n" +
				"प्रश्न क्र. २: आपण महा आस्था तक्रार निवारण प्रणालीमध्ये नोंदवलेल्या तिकीटची स्थिती तपासू इच्छिता का?\n" +
				"उत्तर - \"स्थिती तपासा\" किंवा आपला तिकीट क्रमांक टाइप करा\nउदाहरण: TKT-12345678",
			"register_script": "प्रश्न क्र. १: महा आस्था तक्रार निवारण प्रणालीमध्ये आपण तिकीट नोंदवू इच्छिता का?\n" +
				"उत्तर १ - \"होय\"\nउत्तर २ - \"नाही\"",
			"status_script": "प्रश्न क्र. २: आपण महा आस्था तक्रार निवारण प्रणालीमध्ये नोंदवलेल्या तिकीटची स्थिती तपासू इच्छिता का?\n" +
				"उत्तर १ - \"होय\"\nउत्तर २ - \"नाही\"",
			"feedback_script": "प्रश्न क्र. २.२: महा आस्था तक्रार निवारण प्रणालीद्वारे सोडविण्यात आलेल्या आपल्या तिकीटच्या निराकरणाबाबत अभिप्राय द्यायला इच्छिता का?\n" +
				"उत्तर १ - \"होय\"\nउत्तर २ - \"नाही\"",
			"rating_script": "कृपया महा आस्था तक्रार निवारण प्रणालीच्या अनुभवाला रेटिंग द्या:\n" +
				"१ (खराब) ते ५ (उत्कृष्ट) पर्यंत रेटिंग द्या\n" +
				"१ - खराब\n२ - सामान्य\n३ - चांगले\n४ - खूप चांगले\n५ - उत्कृष्ट",
		},
		GreetingRe: []GreetingPattern{
			{regexp.MustCompile(`शुभ\s*सकाळ|(?i)\bgood\s*morning\b`), "greet_good_morning"},
			{regexp.MustCompile(`शुभ\s*दुपार|(?i)\bgood\s*afternoon\b`), "greet_good_noon"},
			{regexp.MustCompile(`शुभ\s*संध्याकाळ|(?i)\bgood\s*evening\b`), "greet_good_evening"},
			{regexp.MustCompile(`शुभ\s*रात्री|(?i)\bgood\s*night\b`), "greet_good_night"},
			{regexp.MustCompile(`नमस्ते|नमस्कार|हॅलो|हेलो|हाय|(?i)\b(hello|hey+|hii+|hi)\b`), "greet_hello"},
		},
		YesPatterns: []*regexp.Regexp{
			regexp.MustCompile(`होय`),
			regexp.MustCompile(`हो`),
			regexp.MustCompile(`(?i)\byes\b`),
			regexp.MustCompile(`(?i)\by\b`),
		},
		NoPatterns: []*regexp.Regexp{
			regexp.MustCompile(`नाही`),
			regexp.MustCompile(`ना`),
			regexp.MustCompile(`(?i)\bno\b`),
			regexp.MustCompile(`(?i)\bn\b`),
		},
		IntentGroups: []IntentGroup{
			{Intent: IntentStatus, Tokens: []string{"स्थिती तपासा", "तिकीटची स्थिती", "स्थिती"}},
			{Intent: IntentFeedback, Tokens: []string{"अभिप्राय", "रेटिंग", "प्रतिक्रिया"}},
			{Intent: IntentRegister, Tokens: []string{"नोंदवू", "तिकीट", "तक्रार", "शिकायत"}},
		},
		RatingLabels: map[int]string{
			1: "खराब", 2: "सामान्य", 3: "चांगले", 4: "खूप चांगले", 5: "उत्कृष्ट",
		},
		Suggestions: []string{
			"मला तिकीट नोंदवायची आहे",
			"आपण महा आस्था तक्रार निवारण प्रणालीमध्ये नोंदवलेल्या तिकीटची स्थिती तपासू इच्छिता का?",
			"स्थिती तपासा TKT-12345678",
			"महा आस्था तक्रार निवारण प्रणालीमध्ये नोंदविण्यात आलेली तिकीट आहे का?",
			"आपल्या तिकीटच्या निराकरणाबाबत अभिप्राय द्यायला इच्छिता का?",
		},
	}
}
