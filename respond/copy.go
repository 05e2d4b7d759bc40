package respond

// Copy holds the canned response text the generator assembles replies
// from. Callers can override individual pieces through WithCopy.
type Copy struct {
	Greeting      string
	Help          string
	Gratitude     string
	Farewell      string
	Clarification string
	NoMatch       string
	Disclaimer    string
}

// DefaultCopy returns the stock response text.
func DefaultCopy() Copy {
	return Copy{
		Greeting: "Hello! I'm MediBot, your AI health assistant. I can help you understand " +
			"your symptoms and provide preliminary health advice. Please describe your symptoms, " +
			"and I'll do my best to assist you. Remember, I'm not a replacement for professional " +
			"medical advice.",

		Help: "I can help you by:\n" +
			"1. Analyzing your symptoms\n" +
			"2. Suggesting possible conditions\n" +
			"3. Providing preliminary health advice\n" +
			"4. Recommending when to see a doctor\n\n" +
			"Just describe your symptoms, and I'll assist you!",

		Gratitude: "You're welcome! Take care and don't hesitate to reach out if you need more help.",

		Farewell: "Goodbye! Stay healthy and take care. Consult a healthcare professional if symptoms persist.",

		Clarification: "I couldn't detect any specific symptoms from your message. " +
			"Could you please describe your symptoms in more detail? " +
			"For example, 'I have a headache and fever' or 'I'm experiencing chest pain'.",

		NoMatch: "I found some symptoms but couldn't match them to specific conditions in my " +
			"knowledge base. Please consult a healthcare professional for proper evaluation.",

		Disclaimer: "\n⚠️ **Important Disclaimer:**\n" +
			"This is preliminary information only. Please consult a qualified healthcare " +
			"professional for proper diagnosis and treatment. If you're experiencing severe " +
			"symptoms or a medical emergency, call emergency services immediately.",
	}
}

// defaultFollowUpCues mark a message as continuing the previous topic.
var defaultFollowUpCues = []string{
	"more", "what about", "also", "and", "besides", "additionally",
}
