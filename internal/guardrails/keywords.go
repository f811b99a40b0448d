package guardrails

// DefaultNonHealthKeywords are checked before anything else. A hit rejects the
// query even when health terms are also present.
var DefaultNonHealthKeywords = []string{
	"weather", "sports score", "movie", "recipe", "cooking", "politics", "news",
	"stock", "market", "bitcoin", "crypto", "game", "programming", "code",
	"math problem", "homework", "history", "geography", "travel", "hotel",
	"restaurant", "shopping", "fashion", "music", "song", "lyrics",
}

var DefaultHealthKeywords = []string{
	// Medical terms
	"symptom", "disease", "illness", "infection", "pain", "ache", "fever", "cold", "flu",
	"cough", "headache", "nausea", "vomit", "diarrhea", "constipation", "allergy",
	// Body parts
	"heart", "lung", "stomach", "liver", "kidney", "brain", "skin", "bone", "muscle",
	"blood", "throat", "ear", "eye", "nose", "chest", "back", "joint", "head",
	// Health & wellness
	"health", "medical", "medicine", "medication", "drug", "prescription", "doctor",
	"hospital", "clinic", "treatment", "therapy", "cure", "heal", "recover",
	// Nutrition
	"nutrition", "diet", "food", "vitamin", "protein", "carb", "fat", "calorie",
	"nutrient", "meal", "eating", "weight", "obesity", "diabetes", "cholesterol",
	// Fitness
	"exercise", "fitness", "workout", "yoga", "gym", "running", "walking", "cardio",
	"strength", "training", "sport", "physical activity",
	// Mental health
	"mental health", "stress", "anxiety", "depression", "sleep", "insomnia",
	"counseling", "psychology", "mood", "emotion", "wellbeing", "wellness",
	// First aid
	"first aid", "emergency", "injury", "wound", "burn", "cut", "bruise", "fracture",
	"bleeding", "cpr", "choking",
	// Preventive care
	"vaccine", "vaccination", "immunization", "screening", "checkup", "prevention",
	"hygiene", "sanitation", "wash hands",
	// Conditions
	"cancer", "tumor", "hypertension", "asthma", "arthritis", "migraine", "stroke",
	"covid", "coronavirus", "pandemic", "epidemic", "chronic", "acute",
	// General wellness
	"tired", "fatigue", "energy", "weak", "dizzy", "pregnant", "pregnancy", "baby",
	"child health", "senior", "aging", "immune", "breath", "swelling", "rash",
}

var DefaultQuestionWords = []string{
	"what", "how", "why", "when", "where", "can", "should", "is", "are", "do", "does",
}
