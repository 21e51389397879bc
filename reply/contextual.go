package reply

// topicBucket pairs a keyword group with its fixed reply. Buckets are
// evaluated in order; the first hit wins.
type topicBucket struct {
	keywords []string
	response string
}

var topicBuckets = []topicBucket{
	{
		keywords: []string{"education", "study", "learn", "student", "teacher", "exam", "academic"},
		response: "Education is incredibly important! I can help you with information about Takshashila University, or we can discuss education in general. What would you like to know?",
	},
	{
		keywords: []string{"computer", "programming", "software", "internet", "technology", "coding", "data science", "cybersecurity", "machine learning"},
		response: "Technology is fascinating! I'm an AI myself, so I find these topics very interesting. Takshashila University offers programs in Computer Science, AI & Data Science, and has AI and IoT laboratories. What specifically would you like to know about technology?",
	},
	{
		keywords: []string{"career", "job", "employment", "profession", "salary", "interview", "resume"},
		response: "Career planning is important! Takshashila University focuses on industry-oriented programs and skill development to prepare students for their careers. What career path interests you?",
	},
	{
		keywords: []string{"food", "eat", "restaurant", "recipe", "cooking", "hungry", "cuisine"},
		response: "Food is wonderful! I don't eat, but I find culinary topics interesting. What's your favorite food? Have you tried any local Tamil cuisine?",
	},
	{
		keywords: []string{"sport", "football", "cricket", "basketball", "tennis", "badminton", "volleyball"},
		response: "Sports are exciting! Takshashila University has indoor/outdoor sports complexes for students. What sport interests you? Do you play any sports?",
	},
	{
		keywords: []string{"music", "song", "sing", "artist", "melody", "instrument", "concert"},
		response: "Music is beautiful! I appreciate discussions about music and different genres. What kind of music do you like? Do you play any instruments?",
	},
	{
		keywords: []string{"travel", "trip", "vacation", "tour", "destination", "journey"},
		response: "Travel is exciting! Have you visited Tamil Nadu? Takshashila University is located near Tindivanam, which is easily accessible from Chennai and Puducherry. Where would you like to travel?",
	},
	{
		keywords: []string{"health", "fitness", "exercise", "gym", "yoga", "wellness", "nutrition"},
		response: "Health and fitness are important! Takshashila University has schools for Physiotherapy, Paramedical Sciences, and Allied Health Sciences. How do you stay healthy?",
	},
	{
		keywords: []string{"science", "physics", "chemistry", "biology", "experiment", "scientist"},
		response: "Science is fascinating! Takshashila University promotes research and innovation with incubation centers and industry partnerships. What area of science interests you?",
	},
	{
		keywords: []string{"business", "entrepreneurship", "marketing", "finance", "economics", "commerce"},
		response: "Business and management are crucial! Takshashila University offers BBA, MBA, B.Com, and M.Com programs, and encourages innovation and entrepreneurship. Are you interested in business?",
	},
	{
		keywords: []string{"read", "reading", "novel", "author", "literature", "fiction"},
		response: "Reading is wonderful! Takshashila University has a central library and digital learning center. What kind of books do you enjoy reading?",
	},
	{
		keywords: []string{"movie", "film", "cinema", "entertainment", "actor", "series"},
		response: "Movies are great entertainment! What's your favorite movie or genre? Do you prefer action, drama, comedy, or something else?",
	},
	{
		keywords: []string{"hobby", "hobbies", "interest", "passion", "free time", "leisure"},
		response: "Hobbies make life more enjoyable! What are your hobbies? I'd love to hear about what you enjoy doing in your free time.",
	},
	{
		keywords: []string{"future", "goal", "dream", "ambition", "achieve"},
		response: "Having goals and dreams is important! Takshashila University helps students achieve their aspirations through quality education and skill development. What are your goals?",
	},
	{
		keywords: []string{"india", "tamil", "chennai", "culture", "tradition", "festival"},
		response: "India is a diverse and beautiful country! Tamil Nadu, where Takshashila University is located, is known for its rich culture, traditions, and educational institutions. What would you like to know?",
	},
	{
		keywords: []string{"good", "great", "nice", "awesome", "wonderful", "perfect"},
		response: "I'm glad you think so! I enjoy our conversation. What else would you like to talk about?",
	},
}

var fillerPool = []string{
	"That's interesting! Tell me more about that. I can also help you with information about Takshashila University if you're interested.",
	"I see! That's a good point. What else is on your mind? Feel free to ask me anything!",
	"I understand. How can I help you further? I can answer questions about education, technology, or Takshashila University.",
	"That's a great topic! I'd love to hear more. What would you like to discuss?",
	"Interesting perspective! What would you like to discuss next? I'm here to help with any questions.",
	"I appreciate you sharing that with me. Is there anything specific you'd like to know? I can help with various topics!",
	"That's fascinating! Would you like to know more about Takshashila University, or shall we continue this conversation?",
	"Great to hear! I'm here to help with information about Takshashila University or any other questions you might have.",
}

// contextualReply answers by topic bucket, else picks from the filler
// pool at random.
func (g *Generator) contextualReply(input string) string {
	for _, bucket := range topicBuckets {
		if containsAny(input, bucket.keywords...) {
			return bucket.response
		}
	}
	return g.pick(fillerPool)
}
