package model

// Discipline is the creative field a profile belongs to.
type Discipline string

// Known disciplines. The set mirrors the festival registration form.
const (
	DisciplineUIUXDesigner     Discipline = "UI/UX Designer"
	DisciplineFilmmaker        Discipline = "Filmmaker"
	DisciplineDigitalArtist    Discipline = "Digital Artist"
	DisciplineFashionDesigner  Discipline = "Fashion Designer"
	DisciplineBrandStrategist  Discipline = "Brand Strategist"
	DisciplineMusicProducer    Discipline = "Music Producer"
	DisciplineGameDeveloper    Discipline = "Game Developer"
	DisciplineCreativeTech     Discipline = "Creative Technologist"
	DisciplineUXResearcher     Discipline = "UX Researcher"
	DisciplineProductManager   Discipline = "Product Manager"
	DisciplineGraphicDesigner  Discipline = "Graphic Designer"
	DisciplineCreativeDirector Discipline = "Creative Director"
	DisciplinePhotographer     Discipline = "Photographer"
	DisciplineAnimator         Discipline = "Animator"
)

// Disciplines lists every known discipline in registration-form order.
func Disciplines() []Discipline {
	return []Discipline{
		DisciplineUIUXDesigner,
		DisciplineFilmmaker,
		DisciplineDigitalArtist,
		DisciplineFashionDesigner,
		DisciplineBrandStrategist,
		DisciplineMusicProducer,
		DisciplineGameDeveloper,
		DisciplineCreativeTech,
		DisciplineUXResearcher,
		DisciplineProductManager,
		DisciplineGraphicDesigner,
		DisciplineCreativeDirector,
		DisciplinePhotographer,
		DisciplineAnimator,
	}
}

// IsValid reports whether d is one of the known disciplines.
func (d Discipline) IsValid() bool {
	for _, known := range Disciplines() {
		if d == known {
			return true
		}
	}
	return false
}

// StampType classifies how a stamp was earned.
type StampType string

// Known stamp types.
const (
	StampAttendance   StampType = "attendance"
	StampSpeaker      StampType = "speaker"
	StampChallenge    StampType = "challenge"
	StampPresence     StampType = "presence"
	StampContribution StampType = "contribution"
	StampPartnership  StampType = "partnership"
)

// IsValid reports whether t is a known stamp type.
func (t StampType) IsValid() bool {
	switch t {
	case StampAttendance, StampSpeaker, StampChallenge, StampPresence, StampContribution, StampPartnership:
		return true
	}
	return false
}

// MatchStatus is the lifecycle state of a whisper match.
type MatchStatus string

// Match lifecycle states. Connected and dismissed are terminal.
const (
	MatchNew       MatchStatus = "new"
	MatchViewed    MatchStatus = "viewed"
	MatchConnected MatchStatus = "connected"
	MatchDismissed MatchStatus = "dismissed"
)

// IsValid reports whether s is a known match status.
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchNew, MatchViewed, MatchConnected, MatchDismissed:
		return true
	}
	return false
}

// Terminal reports whether no transition may leave s.
func (s MatchStatus) Terminal() bool {
	return s == MatchConnected || s == MatchDismissed
}

// PartnershipStatus is the lifecycle state of a trial partnership.
type PartnershipStatus string

// Partnership states.
const (
	PartnershipActive   PartnershipStatus = "active"
	PartnershipArchived PartnershipStatus = "archived"
)

// IsValid reports whether s is a known partnership status.
func (s PartnershipStatus) IsValid() bool {
	return s == PartnershipActive || s == PartnershipArchived
}

// SessionType classifies a schedule session.
type SessionType string

// Known session types.
const (
	SessionKeynote     SessionType = "Keynote"
	SessionPanel       SessionType = "Panel"
	SessionWorkshop    SessionType = "Workshop"
	SessionScreening   SessionType = "Screening"
	SessionPerformance SessionType = "Performance"
	SessionNetworking  SessionType = "Networking"
	SessionLab         SessionType = "Lab"
)

// IsValid reports whether t is a known session type.
func (t SessionType) IsValid() bool {
	switch t {
	case SessionKeynote, SessionPanel, SessionWorkshop, SessionScreening, SessionPerformance, SessionNetworking, SessionLab:
		return true
	}
	return false
}

// Stage identifies a physical venue stage.
type Stage string

// Known stages.
const (
	StageMain      Stage = "Main Stage"
	StageStudioA   Stage = "Studio A"
	StageLab       Stage = "Lab"
	StageCafe      Stage = "Cafe Stage"
	StageGallery   Stage = "Gallery"
	StageCourtyard Stage = "Courtyard"
)

// IsValid reports whether s is a known stage.
func (s Stage) IsValid() bool {
	switch s {
	case StageMain, StageStudioA, StageLab, StageCafe, StageGallery, StageCourtyard:
		return true
	}
	return false
}

// NotificationType classifies an in-app notification.
type NotificationType string

// Known notification types.
const (
	NotifyMatch    NotificationType = "match"
	NotifySchedule NotificationType = "schedule"
	NotifyStamp    NotificationType = "stamp"
	NotifyMessage  NotificationType = "message"
	NotifySystem   NotificationType = "system"
)

// IsValid reports whether t is a known notification type.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotifyMatch, NotifySchedule, NotifyStamp, NotifyMessage, NotifySystem:
		return true
	}
	return false
}
