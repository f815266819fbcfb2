package catalog

// seedCategories lists topic categories in display order.
var seedCategories = []string{
	"greetings",
	"family",
	"food",
	"colors",
	"numbers",
	"animals",
	"weather",
	"transportation",
	"work",
	"hobbies",
	"adjectives",
	"verbs",
	"nouns",
}

var seedWords = []Word{
	{ID: "w-001", Term: "hello", Translation: "xin chào", Pronunciation: "/həˈləʊ/", Example: "Hello, how are you today?", Level: LevelBeginner, Category: "greetings"},
	{ID: "w-002", Term: "goodbye", Translation: "tạm biệt", Pronunciation: "/ˌɡʊdˈbaɪ/", Example: "Goodbye! See you tomorrow.", Level: LevelBeginner, Category: "greetings"},
	{ID: "w-003", Term: "thank you", Translation: "cảm ơn", Pronunciation: "/ˈθæŋk juː/", Example: "Thank you for your help.", Level: LevelBeginner, Category: "greetings"},
	{ID: "w-004", Term: "sorry", Translation: "xin lỗi", Pronunciation: "/ˈsɒri/", Example: "Sorry, I am late.", Level: LevelBeginner, Category: "greetings"},
	{ID: "w-005", Term: "mother", Translation: "mẹ", Pronunciation: "/ˈmʌðə/", Example: "My mother cooks dinner every evening.", Level: LevelBeginner, Category: "family"},
	{ID: "w-006", Term: "father", Translation: "bố", Pronunciation: "/ˈfɑːðə/", Example: "His father works in a hospital.", Level: LevelBeginner, Category: "family"},
	{ID: "w-007", Term: "sister", Translation: "chị gái", Pronunciation: "/ˈsɪstə/", Example: "I have one older sister.", Level: LevelBeginner, Category: "family"},
	{ID: "w-008", Term: "rice", Translation: "cơm", Pronunciation: "/raɪs/", Example: "We eat rice with every meal.", Level: LevelBeginner, Category: "food"},
	{ID: "w-009", Term: "water", Translation: "nước", Pronunciation: "/ˈwɔːtə/", Example: "Please drink more water.", Level: LevelBeginner, Category: "food"},
	{ID: "w-010", Term: "bread", Translation: "bánh mì", Pronunciation: "/bred/", Example: "She bought fresh bread this morning.", Level: LevelBeginner, Category: "food"},
	{ID: "w-011", Term: "red", Translation: "màu đỏ", Pronunciation: "/red/", Example: "The red car is very fast.", Level: LevelBeginner, Category: "colors"},
	{ID: "w-012", Term: "blue", Translation: "màu xanh dương", Pronunciation: "/bluː/", Example: "The sky is blue today.", Level: LevelBeginner, Category: "colors"},
	{ID: "w-013", Term: "dog", Translation: "con chó", Pronunciation: "/dɒɡ/", Example: "The dog is sleeping in the garden.", Level: LevelBeginner, Category: "animals"},
	{ID: "w-014", Term: "cat", Translation: "con mèo", Pronunciation: "/kæt/", Example: "Her cat likes to climb trees.", Level: LevelBeginner, Category: "animals"},
	{ID: "w-015", Term: "bird", Translation: "con chim", Pronunciation: "/bɜːd/", Example: "A small bird sat on the window.", Level: LevelBeginner, Category: "animals"},
	{ID: "w-016", Term: "sunny", Translation: "nắng", Pronunciation: "/ˈsʌni/", Example: "It is sunny and warm today.", Level: LevelBeginner, Category: "weather"},
	{ID: "w-017", Term: "rain", Translation: "mưa", Pronunciation: "/reɪn/", Example: "Take an umbrella, it may rain.", Level: LevelBeginner, Category: "weather"},
	{ID: "w-018", Term: "bicycle", Translation: "xe đạp", Pronunciation: "/ˈbaɪsɪkl/", Example: "He rides his bicycle to school.", Level: LevelBeginner, Category: "transportation"},
	{ID: "w-019", Term: "train", Translation: "tàu hỏa", Pronunciation: "/treɪn/", Example: "The train leaves at nine.", Level: LevelBeginner, Category: "transportation"},
	{ID: "w-020", Term: "teacher", Translation: "giáo viên", Pronunciation: "/ˈtiːtʃə/", Example: "Our teacher explains everything clearly.", Level: LevelBeginner, Category: "work"},
	{ID: "w-021", Term: "beautiful", Translation: "đẹp", Pronunciation: "/ˈbjuːtɪfəl/", Example: "The sunset is beautiful tonight.", Level: LevelIntermediate, Category: "adjectives"},
	{ID: "w-022", Term: "difficult", Translation: "khó", Pronunciation: "/ˈdɪfɪkəlt/", Example: "This exercise is difficult but interesting.", Level: LevelIntermediate, Category: "adjectives"},
	{ID: "w-023", Term: "comfortable", Translation: "thoải mái", Pronunciation: "/ˈkʌmftəbl/", Example: "This chair is very comfortable.", Level: LevelIntermediate, Category: "adjectives"},
	{ID: "w-024", Term: "improve", Translation: "cải thiện", Pronunciation: "/ɪmˈpruːv/", Example: "Practice every day to improve your English.", Level: LevelIntermediate, Category: "verbs"},
	{ID: "w-025", Term: "decide", Translation: "quyết định", Pronunciation: "/dɪˈsaɪd/", Example: "She could not decide what to wear.", Level: LevelIntermediate, Category: "verbs"},
	{ID: "w-026", Term: "weather", Translation: "thời tiết", Pronunciation: "/ˈweðə/", Example: "The weather changes quickly in spring.", Level: LevelIntermediate, Category: "nouns"},
	{ID: "w-027", Term: "hobby", Translation: "sở thích", Pronunciation: "/ˈhɒbi/", Example: "Photography is my favorite hobby.", Level: LevelIntermediate, Category: "hobbies"},
	{ID: "w-028", Term: "responsibility", Translation: "trách nhiệm", Pronunciation: "/rɪˌspɒnsəˈbɪləti/", Example: "It is your responsibility to complete the project.", Level: LevelAdvanced, Category: "nouns"},
	{ID: "w-029", Term: "accomplish", Translation: "hoàn thành", Pronunciation: "/əˈkʌmplɪʃ/", Example: "She worked hard to accomplish her goals.", Level: LevelAdvanced, Category: "verbs"},
	{ID: "w-030", Term: "opportunity", Translation: "cơ hội", Pronunciation: "/ˌɒpəˈtjuːnəti/", Example: "This job is a great opportunity for you.", Level: LevelAdvanced, Category: "nouns"},
	{ID: "w-031", Term: "environment", Translation: "môi trường", Pronunciation: "/ɪnˈvaɪrənmənt/", Example: "We must protect the environment.", Level: LevelAdvanced, Category: "nouns"},
	{ID: "w-032", Term: "negotiate", Translation: "đàm phán", Pronunciation: "/nɪˈɡəʊʃieɪt/", Example: "They will negotiate the contract next week.", Level: LevelAdvanced, Category: "work"},
}

var seedLessons = []Lesson{
	{
		ID:          "lesson-greetings",
		Title:       "Greetings and Introductions",
		Description: "Basic greetings and how to introduce yourself",
		Level:       LevelBeginner,
		Words:       wordsByCategory("greetings"),
		Exercises: []Exercise{
			{
				ID:            "ex-greet-1",
				Kind:          KindMultipleChoice,
				Question:      `What does "hello" mean?`,
				Options:       []string{"tạm biệt", "xin chào", "cảm ơn", "xin lỗi"},
				CorrectAnswer: "xin chào",
				Explanation:   `"Hello" is the most common greeting, used at any time of day.`,
			},
			{
				ID:            "ex-greet-2",
				Kind:          KindMultipleChoice,
				Question:      `Which word do you use when leaving?`,
				Options:       []string{"goodbye", "hello", "sorry", "please"},
				CorrectAnswer: "goodbye",
				Explanation:   `"Goodbye" closes a conversation when parting.`,
			},
			{
				ID:            "ex-greet-3",
				Kind:          KindFillBlank,
				Question:      "_____ you for your help.",
				CorrectAnswer: "thank",
				Explanation:   `"Thank you" expresses gratitude.`,
			},
		},
	},
	{
		ID:          "lesson-family",
		Title:       "Family Members",
		Description: "Talk about the people in your family",
		Level:       LevelBeginner,
		Words:       wordsByCategory("family"),
		Exercises: []Exercise{
			{
				ID:            "ex-family-1",
				Kind:          KindMultipleChoice,
				Question:      `What does "mẹ" mean?`,
				Options:       []string{"father", "mother", "sister", "brother"},
				CorrectAnswer: "mother",
				Explanation:   `"Mẹ" is the everyday word for mother.`,
			},
			{
				ID:            "ex-family-2",
				Kind:          KindFillBlank,
				Question:      "My _____ works in a hospital. (bố)",
				CorrectAnswer: "father",
				Explanation:   `"Bố" means father.`,
			},
			{
				ID:            "ex-family-3",
				Kind:          KindListening,
				Question:      "Listen and type the word you hear.",
				CorrectAnswer: "sister",
			},
		},
	},
	{
		ID:          "lesson-describing",
		Title:       "Describing Things",
		Description: "Adjectives to describe people and objects",
		Level:       LevelIntermediate,
		Words:       wordsByCategory("adjectives"),
		Exercises: []Exercise{
			{
				ID:            "ex-desc-1",
				Kind:          KindFillBlank,
				Question:      "The sunset is _____ tonight.",
				CorrectAnswer: "beautiful",
				Explanation:   `"Beautiful" describes something pleasing to look at.`,
			},
			{
				ID:            "ex-desc-2",
				Kind:          KindMultipleChoice,
				Question:      `What does "khó" mean?`,
				Options:       []string{"easy", "difficult", "comfortable", "beautiful"},
				CorrectAnswer: "difficult",
				Explanation:   `"Khó" means difficult or hard.`,
			},
			{
				ID:            "ex-desc-3",
				Kind:          KindFillBlank,
				Question:      "This chair is very _____. (thoải mái)",
				CorrectAnswer: "comfortable",
			},
			{
				ID:            "ex-desc-4",
				Kind:          KindMultipleChoice,
				Question:      `Pick the translation of "cải thiện".`,
				Options:       []string{"decide", "improve", "accomplish", "negotiate"},
				CorrectAnswer: "improve",
			},
			{
				ID:            "ex-desc-5",
				Kind:          KindFillBlank,
				Question:      "Practice every day to _____ your English.",
				CorrectAnswer: "improve",
			},
		},
	},
}

// wordsByCategory selects seed words for lesson construction.
func wordsByCategory(category string) []Word {
	var out []Word
	for _, w := range seedWords {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}
