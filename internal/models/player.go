package models

// Profession is a character's trade, chosen once during creation.
type Profession string

const (
	ProfHustler      Profession = "hustler"
	ProfIntellectual Profession = "intellectual"
	ProfCharmer      Profession = "charmer"
)

// Valid reports whether p is one of the known professions.
func (p Profession) Valid() bool {
	switch p {
	case ProfHustler, ProfIntellectual, ProfCharmer:
		return true
	}
	return false
}

// NextStep marks which free-text or voice input is currently expected
// from a player. At most one expectation is pending per player.
type NextStep string

const (
	StepNone        NextStep = ""
	StepSubmitVoice NextStep = "submit_voice"
	StepCreateName  NextStep = "create_character_name"
)

// Stats holds the three character attributes.
type Stats struct {
	Charm        int `json:"charm"`
	Intellect    int `json:"intellect"`
	StreetSmarts int `json:"street_smarts"`
}

// Set assigns an exact value to the named stat. It reports whether the
// name matched a known stat; on false nothing is mutated.
func (s *Stats) Set(name string, value int) bool {
	switch name {
	case "charm":
		s.Charm = value
	case "intellect":
		s.Intellect = value
	case "street_smarts":
		s.StreetSmarts = value
	default:
		return false
	}
	return true
}

// Player is one player's full persisted record.
type Player struct {
	Lang             string     `json:"lang"`
	Approved         bool       `json:"approved"`
	PendingApproval  bool       `json:"pending_approval"`
	VoiceFileID      string     `json:"voice_file_id"`
	CharacterCreated bool       `json:"character_created"`
	Name             string     `json:"name"`
	Profession       Profession `json:"profession"`
	Location         string     `json:"location"`
	Inventory        []string   `json:"inventory"`
	Stats            Stats      `json:"stats"`
	Currency         int        `json:"currency"`
	IsVIP            bool       `json:"is_vip"`
	NextStep         NextStep   `json:"next_step"`
}

// NewPlayer returns a fresh record with the documented defaults.
func NewPlayer() *Player {
	return &Player{
		Lang:      "en",
		Location:  "downtown",
		Inventory: []string{},
		Stats:     Stats{Charm: 1, Intellect: 1, StreetSmarts: 1},
		Currency:  100,
	}
}

// ApplyProfession records the chosen trade, grants its one-time +2 stat
// bonus and marks the character as created. It reports whether the
// profession was valid; on false nothing is mutated.
func (p *Player) ApplyProfession(prof Profession) bool {
	switch prof {
	case ProfHustler:
		p.Stats.StreetSmarts += 2
	case ProfIntellectual:
		p.Stats.Intellect += 2
	case ProfCharmer:
		p.Stats.Charm += 2
	default:
		return false
	}
	p.Profession = prof
	p.CharacterCreated = true
	return true
}
