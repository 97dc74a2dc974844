package generator

import (
	"fmt"
	"math/rand"
	"strings"
)

// Event name components - theme + format combinations.
var eventThemes = []string{
	"Spring", "Summer", "Autumn", "Winter", "Annual",
	"Quarterly", "Monthly", "Community", "Product", "Founders",
	"Members", "Partner", "Regional", "Downtown", "Rooftop",
	"Harbor", "Garden", "Studio", "Campus", "Neighborhood",
}

var eventFormats = []string{
	"Gala", "Meetup", "Workshop", "Launch", "Mixer",
	"Showcase", "Retreat", "Summit", "Roundtable", "Brunch",
	"Hackathon", "Tasting", "Screening", "Fair", "Social",
	"Kickoff", "Reception", "Forum", "Open House", "Festival",
}

var eventVenues = []string{
	"Harbor View Loft", "Main Auditorium", "Innovation Lab",
	"Grand Ballroom", "Riverside Pavilion", "Sky Terrace",
	"Demo Theater", "Training Room B", "Engineering Wing",
	"Offsite Lodge", "The Glasshouse", "Union Hall",
	"Pier 12 Warehouse", "Botanical Atrium", "Old Mill Studio",
}

var eventDescriptions = []string{
	"Doors open thirty minutes early. Light refreshments provided.",
	"An evening of short talks, demos and conversation.",
	"Bring a colleague. Registration closes the day before.",
	"Full agenda and directions are on the event page.",
	"Limited seating, first come first served.",
}

// Guest names - modern, globally diverse.
var guestFirstNames = []string{
	"Sarah", "Alex", "Yuki", "Priya", "Amara", "Diego",
	"Layla", "Kofi", "Morgan", "Mei", "Ravi", "Sofia",
	"Kenji", "Zara", "Jordan", "Aisha", "Marcus", "Elena",
	"Tariq", "Nia", "Mateo", "Hana", "Omar", "Lucia",
	"Imani", "Jin", "Carmen", "Dev", "Farah", "Wren",
}

var guestLastNames = []string{
	"Reyes", "Chen", "Okafor", "Tanaka", "Novak", "Silva",
	"Haddad", "Mensah", "Kowalski", "Nguyen", "Moreau", "Patel",
	"Larsen", "Vargas", "Ivanova", "Kim", "Diallo", "Rossi",
	"Yamada", "Castillo", "Berg", "Traore", "Sato", "Delgado",
}

var messageSubjects = []string{
	"Venue and parking details",
	"Schedule update",
	"Reminder: RSVP closes soon",
	"Speaker lineup announced",
	"What to bring",
	"Agenda inside",
	"Seating and accessibility notes",
	"Catering preview",
	"Weather plan for the day",
	"Thanks for joining us",
}

var messageBodies = []string{
	"Quick update from the organizing team. Full details are on the event page.",
	"We have updated the event page with the latest information. See you there.",
	"A short reminder before the event. Reply to this message with any questions.",
	"Here is what changed since the last update. Check the event page for the rest.",
	"The team is looking forward to seeing everyone. Travel safe.",
}

const guestEmailDomain = "guests.example.com"

// emailRegistry keeps generated guest emails unique, so the domain service's
// resubmission handling never collapses two generated guests into one.
type emailRegistry struct {
	counts map[string]int
}

func newEmailRegistry() *emailRegistry {
	return &emailRegistry{counts: make(map[string]int)}
}

// unique returns an email for the local part, suffixing repeats.
func (r *emailRegistry) unique(local string) string {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	count := r.counts[local]
	r.counts[local] = count + 1
	if count == 0 {
		return local + "@" + guestEmailDomain
	}
	return fmt.Sprintf("%s.%d@%s", local, count+1, guestEmailDomain)
}

// eventTitle generates an event name like "Summer Gala".
func eventTitle(rng *rand.Rand) string {
	theme := eventThemes[rng.Intn(len(eventThemes))]
	format := eventFormats[rng.Intn(len(eventFormats))]
	return theme + " " + format
}

// eventVenue picks a venue name.
func eventVenue(rng *rand.Rand) string {
	return eventVenues[rng.Intn(len(eventVenues))]
}

// eventDescription picks a short description.
func eventDescription(rng *rand.Rand) string {
	return eventDescriptions[rng.Intn(len(eventDescriptions))]
}

// guestName generates a guest display name.
func guestName(rng *rand.Rand) string {
	first := guestFirstNames[rng.Intn(len(guestFirstNames))]
	last := guestLastNames[rng.Intn(len(guestLastNames))]
	return first + " " + last
}

// guestEmailLocal lowercases a guest name into an email local part.
func guestEmailLocal(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "."))
}

// messageSubject picks a broadcast subject.
func messageSubject(rng *rand.Rand) string {
	return messageSubjects[rng.Intn(len(messageSubjects))]
}

// messageBody picks a broadcast body.
func messageBody(rng *rand.Rand) string {
	return messageBodies[rng.Intn(len(messageBodies))]
}
