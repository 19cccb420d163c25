package dataset

import (
	"context"
	"time"

	"github.com/craftaddis/whisper/internal/domain/model"
)

// seed is the in-memory Dataset used when no external provider is
// wired. Collections are fixed after construction; timestamps are
// anchored to the now supplied at seed time so relative ages stay
// meaningful across restarts.
type seed struct {
	currentUser   model.Profile
	profiles      []model.Profile
	matches       []model.WhisperMatch
	partnerships  []model.TrialPartnership
	threads       map[string][]model.ChatMessage
	sessions      []model.ScheduleSession
	notifications []model.AppNotification
	eventChat     []model.EventChatMessage
}

// Seed builds the built-in CRAFT Addis 2026 dataset anchored at now.
func Seed(now time.Time) Dataset {
	s := &seed{}
	s.profiles = seedProfiles(now)
	s.currentUser = s.profiles[0]
	s.matches = seedMatches(s.profiles, now)
	s.partnerships, s.threads = seedPartnerships(s.profiles, now)
	s.sessions = seedSessions()
	s.notifications = seedNotifications(now)
	s.eventChat = seedEventChat(s.profiles, now)
	return s
}

func (s *seed) CurrentUser(_ context.Context) model.Profile { return s.currentUser }

func (s *seed) Profiles(_ context.Context) []model.Profile {
	out := make([]model.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

func (s *seed) Matches(_ context.Context) []model.WhisperMatch {
	out := make([]model.WhisperMatch, len(s.matches))
	copy(out, s.matches)
	return out
}

func (s *seed) Partnerships(_ context.Context) []model.TrialPartnership {
	out := make([]model.TrialPartnership, len(s.partnerships))
	copy(out, s.partnerships)
	return out
}

func (s *seed) Thread(_ context.Context, partnershipID string) ([]model.ChatMessage, error) {
	msgs, ok := s.threads[partnershipID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *seed) Sessions(_ context.Context) []model.ScheduleSession {
	out := make([]model.ScheduleSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *seed) Notifications(_ context.Context) []model.AppNotification {
	out := make([]model.AppNotification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *seed) EventChat(_ context.Context) []model.EventChatMessage {
	out := make([]model.EventChatMessage, len(s.eventChat))
	copy(out, s.eventChat)
	return out
}

func seedProfiles(now time.Time) []model.Profile {
	joined := now.Add(-45 * 24 * time.Hour)
	return []model.Profile{
		{
			ID: "u0", Name: "Lia Mekonnen", Discipline: model.DisciplineUIUXDesigner,
			Bio:      "Product designer exploring Amharic type systems and inclusive design.",
			Location: "Addis Ababa", AvatarURL: "/avatars/u0.jpg",
			CurrentIntent: "Seeking a creative technologist to prototype a typographic installation",
			PortfolioLinks: []model.PortfolioLink{
				{Label: "Behance", URL: "https://behance.net/liamek", Icon: "behance"},
				{Label: "Site", URL: "https://liamek.design", Icon: "website"},
			},
			Stamps: []model.Stamp{
				{ID: "st1", Type: model.StampAttendance, Label: "Day 1", Description: "Checked in on day one", EventName: "CRAFT Addis 2026", IssuedAt: now.Add(-8 * time.Hour)},
				{ID: "st2", Type: model.StampChallenge, Label: "Poster Jam", Description: "Entered the 90-minute poster challenge", EventName: "CRAFT Addis 2026", IssuedAt: now.Add(-5 * time.Hour)},
			},
			IsLocal: true, IsOnline: true, JoinedAt: joined,
		},
		{
			ID: "u1", Name: "Selam Tesfaye", Discipline: model.DisciplineCreativeTech,
			Bio:      "Builds interactive installations with projection mapping and sensors.",
			Location: "Addis Ababa", AvatarURL: "/avatars/u1.jpg",
			CurrentIntent: "Offering creative coding help, looking for a designer to collaborate with",
			Stamps: []model.Stamp{
				{ID: "st3", Type: model.StampSpeaker, Label: "Speaker", Description: "Spoke at a festival session", EventName: "CRAFT Addis 2026", IssuedAt: now.Add(-6 * time.Hour)},
			},
			IsLocal: true, IsOnline: true, JoinedAt: joined,
		},
		{
			ID: "u2", Name: "Dawit Abebe", Discipline: model.DisciplineFilmmaker,
			Bio:      "Documentary filmmaker focused on urban craft communities.",
			Location: "Nairobi", AvatarURL: "/avatars/u2.jpg",
			CurrentIntent: "Seeking a sound designer for a short film premiering day 3",
			IsLocal: false, IsOnline: true, JoinedAt: joined,
		},
		{
			ID: "u3", Name: "Hanna Girma", Discipline: model.DisciplineFashionDesigner,
			Bio:      "Textile-first fashion label mixing handweaving with digital print.",
			Location: "Addis Ababa", AvatarURL: "/avatars/u3.jpg",
			CurrentIntent: "Offering textile patterns for digital collabs",
			IsLocal: true, IsOnline: false, JoinedAt: joined,
		},
		{
			ID: "u4", Name: "Yonas Bekele", Discipline: model.DisciplineMusicProducer,
			Bio:      "Producer sampling traditional krar lines into electronic sets.",
			Location: "Hawassa", AvatarURL: "/avatars/u4.jpg",
			CurrentIntent: "Looking for visual artists for a live AV performance",
			IsLocal: false, IsOnline: true, JoinedAt: joined,
		},
		{
			ID: "u5", Name: "Meron Haile", Discipline: model.DisciplineDigitalArtist,
			Bio:      "3D artist rendering Ethiopian futurism scenes.",
			Location: "Addis Ababa", AvatarURL: "/avatars/u5.jpg",
			CurrentIntent: "Seeking a brand strategist for a gallery launch",
			IsLocal: true, IsOnline: false, DoNotDisturb: true, JoinedAt: joined,
		},
	}
}

func seedMatches(profiles []model.Profile, now time.Time) []model.WhisperMatch {
	me := profiles[0]
	// Canonical order: score descending.
	return []model.WhisperMatch{
		{
			ID: "wm1", User: profiles[1], MatchScore: 92,
			MyIntent: me.CurrentIntent, TheirIntent: profiles[1].CurrentIntent,
			MatchedKeywords: []string{"creative coding", "installation", "prototype"},
			Status:          model.MatchNew, CreatedAt: now.Add(-35 * time.Minute),
		},
		{
			ID: "wm2", User: profiles[5], MatchScore: 87,
			MyIntent: me.CurrentIntent, TheirIntent: profiles[5].CurrentIntent,
			MatchedKeywords: []string{"3d", "gallery", "visual identity"},
			Status:          model.MatchNew, CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "wm3", User: profiles[2], MatchScore: 76,
			MyIntent: me.CurrentIntent, TheirIntent: profiles[2].CurrentIntent,
			MatchedKeywords: []string{"documentary", "craft"},
			Status:          model.MatchViewed, CreatedAt: now.Add(-9 * time.Hour),
		},
		{
			ID: "wm4", User: profiles[4], MatchScore: 71,
			MyIntent: me.CurrentIntent, TheirIntent: profiles[4].CurrentIntent,
			MatchedKeywords: []string{"live AV", "performance"},
			Status:          model.MatchViewed, CreatedAt: now.Add(-30 * time.Hour),
		},
		{
			ID: "wm5", User: profiles[3], MatchScore: 64,
			MyIntent: me.CurrentIntent, TheirIntent: profiles[3].CurrentIntent,
			MatchedKeywords: []string{"textile"},
			Status:          model.MatchNew, CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
	}
}

func seedPartnerships(profiles []model.Profile, now time.Time) ([]model.TrialPartnership, map[string][]model.ChatMessage) {
	partnerships := []model.TrialPartnership{
		{
			ID: "p1", Partner: profiles[1], Status: model.PartnershipActive,
			MyIntent:      profiles[0].CurrentIntent,
			PartnerIntent: profiles[1].CurrentIntent,
			LastMessage:   "I can bring the projector tomorrow morning",
			LastMessageAt: now.Add(-20 * time.Minute), UnreadCount: 2,
			CreatedAt: now.Add(-30 * time.Hour),
		},
		{
			ID: "p2", Partner: profiles[3], Status: model.PartnershipActive,
			MyIntent:      profiles[0].CurrentIntent,
			PartnerIntent: profiles[3].CurrentIntent,
			LastMessage:   "Sent you the pattern files",
			LastMessageAt: now.Add(-26 * time.Hour), UnreadCount: 0,
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID: "p3", Partner: profiles[4], Status: model.PartnershipArchived,
			MyIntent:      profiles[0].CurrentIntent,
			PartnerIntent: profiles[4].CurrentIntent,
			LastMessage:   "Let's pick this up after the festival",
			LastMessageAt: now.Add(-3 * 24 * time.Hour), UnreadCount: 0,
			CreatedAt: now.Add(-4 * 24 * time.Hour),
		},
	}
	threads := map[string][]model.ChatMessage{
		"p1": {
			{ID: "m1", SenderID: "u0", Text: "Loved your sensor wall at the lab!", SentAt: now.Add(-29 * time.Hour), IsOwn: true},
			{ID: "m2", SenderID: "u1", Text: "Thanks! Your type system would map beautifully onto it", SentAt: now.Add(-28 * time.Hour)},
			{ID: "m3", SenderID: "u1", Text: "Want to try a test projection?", SentAt: now.Add(-25 * time.Minute)},
			{ID: "m4", SenderID: "u1", Text: "I can bring the projector tomorrow morning", SentAt: now.Add(-20 * time.Minute)},
		},
		"p2": {
			{ID: "m5", SenderID: "u3", Text: "Here are the handweave scans", SentAt: now.Add(-27 * time.Hour)},
			{ID: "m6", SenderID: "u3", Text: "Sent you the pattern files", SentAt: now.Add(-26 * time.Hour)},
		},
		"p3": {
			{ID: "m7", SenderID: "u0", Text: "The AV set idea is great but I'm swamped", SentAt: now.Add(-3*24*time.Hour - time.Hour), IsOwn: true},
			{ID: "m8", SenderID: "u4", Text: "Let's pick this up after the festival", SentAt: now.Add(-3 * 24 * time.Hour)},
		},
	}
	return partnerships, threads
}

func seedSessions() []model.ScheduleSession {
	return []model.ScheduleSession{
		{
			ID: "s1", Day: 1, StartTime: "09:30", EndTime: "10:30",
			Title: "Craft as Infrastructure", Description: "Opening keynote on creative economies in East Africa.",
			Type: model.SessionKeynote, Stage: model.StageMain,
			Speakers: []model.Speaker{{Name: "Aida Muluneh", Discipline: "Photographer", AvatarURL: "/avatars/sp1.jpg"}},
		},
		{
			ID: "s2", Day: 1, StartTime: "11:00", EndTime: "12:30",
			Title: "Type Beyond Latin", Description: "Workshop on designing Ge'ez-script typefaces.",
			Type: model.SessionWorkshop, Stage: model.StageStudioA,
			Speakers: []model.Speaker{{Name: "Abel Tilahun", Discipline: "Type Designer", AvatarURL: "/avatars/sp2.jpg"}},
		},
		{
			ID: "s3", Day: 1, StartTime: "14:00", EndTime: "15:00",
			Title: "Funding the Independent Film", Description: "Panel with producers and grant bodies.",
			Type: model.SessionPanel, Stage: model.StageMain,
			Speakers:       []model.Speaker{{Name: "Salome Kassa", Discipline: "Producer", AvatarURL: "/avatars/sp3.jpg"}},
			IsHappeningNow: true,
		},
		{
			ID: "s4", Day: 1, StartTime: "16:00", EndTime: "18:00",
			Title: "Open Lab: Wearable Tech", Description: "Drop-in prototyping with conductive thread.",
			Type: model.SessionLab, Stage: model.StageLab,
		},
		{
			ID: "s5", Day: 2, StartTime: "10:00", EndTime: "11:00",
			Title: "Sampling Tradition", Description: "Live production session reworking krar recordings.",
			Type: model.SessionPerformance, Stage: model.StageCafe,
			Speakers: []model.Speaker{{Name: "Yonas Bekele", Discipline: "Music Producer", AvatarURL: "/avatars/u4.jpg"}},
		},
		{
			ID: "s6", Day: 2, StartTime: "13:00", EndTime: "14:30",
			Title: "Shorts Block: New Addis", Description: "Screening of five short films.",
			Type: model.SessionScreening, Stage: model.StageGallery,
		},
		{
			ID: "s7", Day: 3, StartTime: "11:00", EndTime: "12:00",
			Title: "Speed Collab", Description: "Structured networking for cross-discipline teams.",
			Type: model.SessionNetworking, Stage: model.StageCourtyard,
		},
		{
			ID: "s8", Day: 3, StartTime: "17:00", EndTime: "18:30",
			Title: "Closing: What We Made", Description: "Showcase of projects started at the festival.",
			Type: model.SessionKeynote, Stage: model.StageMain,
		},
	}
}

func seedNotifications(now time.Time) []model.AppNotification {
	// Newest first.
	return []model.AppNotification{
		{ID: "n1", Type: model.NotifyMatch, Title: "New whisper match", Body: "Selam Tesfaye matches your intent at 92%", CreatedAt: now.Add(-10 * time.Minute), ReferenceID: "wm1"},
		{ID: "n2", Type: model.NotifyMessage, Title: "New message", Body: "Selam: I can bring the projector tomorrow morning", CreatedAt: now.Add(-20 * time.Minute), ReferenceID: "p1"},
		{ID: "n3", Type: model.NotifySchedule, Title: "Starting soon", Body: "Funding the Independent Film starts in 15 minutes", CreatedAt: now.Add(-3 * time.Hour), ReferenceID: "s3"},
		{ID: "n4", Type: model.NotifyStamp, Title: "Stamp earned", Body: "You earned the Poster Jam stamp", CreatedAt: now.Add(-5 * time.Hour), ReferenceID: "st2"},
		{ID: "n5", Type: model.NotifySystem, Title: "Welcome to CRAFT Addis", Body: "Set your intent so others can find you", CreatedAt: now.Add(-26 * time.Hour)},
	}
}

func seedEventChat(profiles []model.Profile, now time.Time) []model.EventChatMessage {
	sender := func(p model.Profile) model.EventChatSender {
		return model.EventChatSender{ID: p.ID, Name: p.Name, Discipline: p.Discipline, AvatarURL: p.AvatarURL, IsLocal: p.IsLocal}
	}
	return []model.EventChatMessage{
		{ID: "ec1", Sender: sender(profiles[2]), Text: "The panel is getting into grant timelines now", SentAt: now.Add(-12 * time.Minute)},
		{ID: "ec2", Sender: sender(profiles[1]), Text: "Anyone else at the main stage?", SentAt: now.Add(-8 * time.Minute)},
		{ID: "ec3", Sender: sender(profiles[0]), Text: "On my way over", SentAt: now.Add(-6 * time.Minute), IsOwn: true},
	}
}
