package reply

import (
	"fmt"
	"strings"
)

// institutionReply dispatches on sub-keyword groups of the profile.
// Club-specific phrasing is a sub-branch of this category.
func (g *Generator) institutionReply(input string) string {
	p := g.kb.Profile

	if g.isClubQuery(input) {
		return g.clubReply(input)
	}

	switch {
	case containsAny(input, "what is takshashila", "about the university", "university name", "what university", "tell me about takshashila"):
		return fmt.Sprintf("%s is a modern multidisciplinary private university located %s. It was established in %s under the Tamil Nadu Private Universities Act. The university is named after the ancient Takshashila (Taxila) — symbolizing excellence in higher learning.",
			p.Name, strings.ToLower(p.Location[:1])+p.Location[1:], p.Established)

	case containsAny(input, "where", "location", "address", "located", "reach", "directions"):
		return fmt.Sprintf("📍 %s is located at:\n\n%s\n\nThe campus is conveniently located along the Chennai–Trichy Highway (NH-45), making it easily accessible from Chennai, Puducherry, and Villupuram.\n\nWebsite: %s",
			p.Name, p.Address, p.Website)

	case containsAny(input, "established", "founded", "started", "since when", "what year"):
		return fmt.Sprintf("%s was established in %s under the Tamil Nadu Private Universities Act (Tamil Nadu Act No. 19 of 2023).", p.Name, p.Established)

	case containsAny(input, "vision", "aspiration"):
		return fmt.Sprintf("🔹 Vision of %s:\n\n\"%s\"", p.Name, p.Vision)

	case containsAny(input, "mission", "objective"):
		return fmt.Sprintf("🔹 Mission of %s:\n\n%s", p.Name, numberedList(p.Mission))

	case containsAny(input, "course", "program", "degree", "school", "department", "faculty", "btech", "bca", "mca", "bba", "mba", "offer"):
		return fmt.Sprintf("🔹 %s offers Undergraduate, Postgraduate, and Doctoral (Ph.D.) programs across various disciplines:\n\n%s\n\nThe university focuses heavily on industry collaboration, AI-based learning, and research incubation centers.",
			p.Name, numberedList(p.Schools))

	case containsAny(input, "facilities", "facility", "infrastructure", "amenities", "hostel", "library", "laboratory", "sports", "wifi", "wi-fi", "accommodation"):
		return fmt.Sprintf("🔹 Facilities at %s:\n\nThe campus features:\n%s\n\nThe campus is built with a blend of modern architecture and green environment.",
			p.Name, bulletList(p.Facilities))

	case containsAny(input, "research", "innovation", "incubation", "startup", "hackathon"):
		return fmt.Sprintf("🔹 Research and Innovation at %s:\n\nThe university promotes:\n%s", p.Name, bulletList(p.Research))

	case containsAny(input, "accreditation", "recognized", "recognition", "ugc", "aicte", "approved", "affiliated", "accredited"):
		return fmt.Sprintf("🔹 Accreditation and Recognition:\n\n%s", p.Accreditation)

	case containsAny(input, "website", "contact", "email", "phone", "link"):
		return fmt.Sprintf("🌐 Official Website: %s\n\nFor more information, admissions, or inquiries, please visit the official website or contact the university directly.", p.Website)

	case containsAny(input, "founder", "promoting", "manakula", "vinayagar", "who owns", "management"):
		return fmt.Sprintf("🔹 %s is promoted by %s, which also manages:\n• Sri Manakula Vinayagar Engineering College\n• Mailam Engineering College\n• Rajiv Gandhi College of Engineering & Technology\n• Sri Manakula Vinayagar Medical College & Hospital\n\nThe group has decades of experience in education, healthcare, and research in South India.",
			p.Name, p.PromotingBody)

	case containsAny(input, "name meaning", "why takshashila", "symbolism", "taxila", "ancient", "gandhara"):
		return fmt.Sprintf("🔹 %s", p.Symbolism)
	}

	return fmt.Sprintf("🔹 About %s:\n\n%s is a modern multidisciplinary private university established in %s. Located at %s, it offers various programs across multiple disciplines.\n\nMotto: \"%s\"\n\nWebsite: %s\n\nWhat specific information would you like to know about the university?",
		p.Name, p.Name, p.Established, p.Address, p.Motto, p.Website)
}

// isClubQuery detects the club sub-category: a club name co-occurring
// with a directory question, or an explicit enumeration ask.
func (g *Generator) isClubQuery(input string) bool {
	if containsAny(input, "list clubs", "all clubs", "which clubs", "what clubs") {
		return true
	}
	if !strings.Contains(input, "club") {
		if _, ok := g.kb.ClubByAlias(input); !ok {
			return false
		}
	}
	return containsAny(input, "club", "room", "where", "location", "when", "time", "meet")
}

func containsAny(input string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}
	return b.String()
}

func bulletList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "• %s", item)
	}
	return b.String()
}
