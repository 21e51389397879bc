package reply

import (
	"fmt"
	"time"
)

func (g *Generator) greetingPool() []string {
	return []string{
		fmt.Sprintf("Hello! I'm %s, your AI assistant. How can I help you today?", g.assistantName),
		fmt.Sprintf("Hi there! I'm %s. What would you like to know?", g.assistantName),
		fmt.Sprintf("Hey! Great to meet you! I'm %s, ready to assist you.", g.assistantName),
		fmt.Sprintf("Good day! I'm %s. How may I help you?", g.assistantName),
	}
}

func (g *Generator) identityReply() string {
	return fmt.Sprintf("I'm %s, your friendly AI assistant! I'm here to help you with anything you need. I can answer questions about Takshashila University, shuttle routes, student clubs, have general conversations, help with math, and much more. What would you like to know?", g.assistantName)
}

var wellbeingPool = []string{
	"I'm doing great, thank you for asking! I'm always here and ready to chat. How about you?",
	"I'm excellent! Always ready to help. How are you doing today?",
	"I'm fantastic! Thanks for asking. How can I assist you?",
	"I'm doing wonderful! I enjoy helping people. What's on your mind?",
}

func (g *Generator) capabilitiesReply() string {
	return "I can help you with many things! I can:\n• Answer questions about Takshashila University\n• Find shuttle routes, stops, and pickup times\n• Tell you about student clubs and their rooms\n• Help with basic math calculations\n• Answer questions about time, dates, and general knowledge\n• Have general conversations on many topics\n\nWhat would you like to know?"
}

func dateTimeReply(now time.Time) string {
	return fmt.Sprintf("Today is %s.\nThe current time is %s.",
		now.Format("Monday, January 2, 2006"),
		now.Format("03:04:05 PM"))
}

const weatherReply = "I don't have access to real-time weather data, but I'd be happy to chat about weather in general! The campus of Takshashila University is located in Tamil Nadu, which typically has a tropical climate. What would you like to know?"

var gratitudePool = []string{
	"You're very welcome! I'm glad I could help. Is there anything else you'd like to know?",
	"My pleasure! Happy to assist. Feel free to ask me anything else!",
	"You're welcome! I'm here whenever you need help. What else can I do for you?",
	"Anytime! I enjoy helping. Is there something else you'd like to know?",
}

var farewellPool = []string{
	"Goodbye! It was nice chatting with you. Feel free to come back anytime!",
	"See you later! Have a great day ahead!",
	"Take care! I'll be here whenever you need me.",
	"Goodbye! It was a pleasure talking with you. Come back soon!",
}

const complimentReply = "Thank you so much! I really appreciate that. I'm here to help you with anything you need. What would you like to know?"
