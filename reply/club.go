package reply

import (
	"campus-chat/domain"
	"fmt"
	"regexp"
	"strings"
)

var roomTokenPattern = regexp.MustCompile(`\b[a-z]-?\d{3}\b`)

// clubReply resolves a specific club by name keyword, then by room
// token, then answers schedule and enumeration questions, and finally
// falls back to the full directory.
func (g *Generator) clubReply(input string) string {
	if club, ok := g.kb.ClubByAlias(input); ok {
		return g.clubDetail(club)
	}

	if token := roomTokenPattern.FindString(input); token != "" {
		if club, ok := g.kb.ClubByRoom(normalizeRoomToken(token)); ok {
			return g.clubDetail(club)
		}
	}

	if containsAny(input, "when", "time", "schedule", "meeting") {
		return fmt.Sprintf("🕒 All clubs meet at the same time: %s.", g.kb.ClubMeetingTime)
	}

	if containsAny(input, "list", "all", "which", "what clubs") {
		return g.clubDirectory()
	}

	return g.clubDirectory()
}

func (g *Generator) clubDetail(club domain.Club) string {
	return fmt.Sprintf("🎯 %s\n\nRoom(s): %s\nMeeting time: %s",
		club.Name, strings.Join(club.Rooms, ", "), g.kb.ClubMeetingTime)
}

func (g *Generator) clubDirectory() string {
	var b strings.Builder
	b.WriteString("🎯 Student clubs:\n")
	for _, club := range g.kb.Clubs {
		fmt.Fprintf(&b, "\n• %s — %s", club.Name, strings.Join(club.Rooms, ", "))
	}
	fmt.Fprintf(&b, "\n\nMeeting time for all clubs: %s.", g.kb.ClubMeetingTime)
	return b.String()
}

// normalizeRoomToken folds "a204" into the directory's "a-204" form.
func normalizeRoomToken(token string) string {
	if strings.Contains(token, "-") {
		return token
	}
	return token[:1] + "-" + token[1:]
}
