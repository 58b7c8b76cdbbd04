// Package world holds the static map content: districts, the locations
// inside them, and the NPCs found there. The data is read-only for the
// process lifetime.
package world

import "fmt"

// District is a top-level map area a player can stand in.
type District struct {
	Names        map[string]string
	Descriptions map[string]string
	Connections  []string
	Locations    []string
}

// Location is a point of interest inside a district.
type Location struct {
	Names       map[string]string
	NPCs        []string
	RequiresVIP bool
}

// NPC is a talkable character with a single static dialogue line.
type NPC struct {
	Names    map[string]string
	Dialogue map[string]string
}

// Name returns the district name for lang, falling back to English.
func (d District) Name(lang string) string { return pick(d.Names, lang) }

// Description returns the district description for lang, falling back
// to English.
func (d District) Description(lang string) string { return pick(d.Descriptions, lang) }

// Name returns the location name for lang, falling back to English.
func (l Location) Name(lang string) string { return pick(l.Names, lang) }

// Name returns the NPC name for lang, falling back to English.
func (n NPC) Name(lang string) string { return pick(n.Names, lang) }

// Line returns the NPC dialogue for lang, falling back to English.
func (n NPC) Line(lang string) string { return pick(n.Dialogue, lang) }

func pick(m map[string]string, lang string) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m["en"]
}

var Districts = map[string]District{
	"downtown": {
		Names: map[string]string{"en": "Downtown", "fa": "مرکز شهر"},
		Descriptions: map[string]string{
			"en": "Towering skyscrapers and luxury apartments dominate the skyline. The air hums with power and ambition.",
			"fa": "آسمان‌خراش‌های سر به فلک کشیده و آپارتمان‌های لوکس، خط افق را تسخیر کرده‌اند. هوا از قدرت و جاه‌طلبی لبریز است.",
		},
		Connections: []string{"neon_district", "industrial_zone", "the_plaza"},
		Locations:   []string{"the_onyx_bar", "vip_lounge"},
	},
	"neon_district": {
		Names: map[string]string{"en": "Neon District", "fa": "منطقه نئون"},
		Descriptions: map[string]string{
			"en": "A vibrant, chaotic district buzzing with nightlife. Music spills from every doorway.",
			"fa": "منطقه‌ای پرجنب‌وجوش و پرهرج‌ومرج که با زندگی شبانه می‌تپد. موسیقی از هر دری به بیرون می‌ریزد.",
		},
		Connections: []string{"downtown"},
	},
	"industrial_zone": {
		Names: map[string]string{"en": "Industrial Zone", "fa": "منطقه صنعتی"},
		Descriptions: map[string]string{
			"en": "A gritty, working-class area of factories and warehouses. The smell of metal and sweat hangs in the air.",
			"fa": "منطقه‌ای زمخت و کارگری پر از کارخانه و انبار. بوی فلز و عرق در هوا پیچیده است.",
		},
		Connections: []string{"downtown"},
	},
	"the_plaza": {
		Names: map[string]string{"en": "The Plaza", "fa": "پلازا"},
		Descriptions: map[string]string{
			"en": "An open-air plaza with a grand fountain at its center. A place for the public to gather.",
			"fa": "یک میدانگاه با یک فواره بزرگ در مرکز آن. مکانی برای تجمع مردم.",
		},
		Connections: []string{"downtown"},
	},
}

var Locations = map[string]Location{
	"the_onyx_bar": {
		Names: map[string]string{"en": "The Onyx Bar", "fa": "بار اونیکس"},
		NPCs:  []string{"slick_the_bartender"},
	},
	"vip_lounge": {
		Names:       map[string]string{"en": "The VIP Lounge", "fa": "سالن VIP"},
		RequiresVIP: true,
	},
}

var NPCs = map[string]NPC{
	"slick_the_bartender": {
		Names: map[string]string{"en": "Slick, the Bartender", "fa": "اسلیک، متصدی بار"},
		Dialogue: map[string]string{
			"en": "'What can I get for you? See a lot of faces in here. Some win, some lose. The city always collects.'",
			"fa": "'چی میل داری؟ چهره‌های زیادی اینجا می‌بینم. بعضی‌ها می‌برن، بعضی‌ها می‌بازن. شهر همیشه حقشو می‌گیره.'",
		},
	},
}

// DistrictExists reports whether key names a known district.
func DistrictExists(key string) bool {
	_, ok := Districts[key]
	return ok
}

// DistrictKeys returns every district key, for usage messages.
func DistrictKeys() []string {
	keys := make([]string, 0, len(Districts))
	for k := range Districts {
		keys = append(keys, k)
	}
	return keys
}

// Validate checks that every cross-reference in the static data resolves:
// district connections point at districts, district locations point at
// locations, and location NPCs point at NPCs. A dangling key is a content
// bug caught here rather than at render time.
func Validate() error {
	for dk, d := range Districts {
		for _, conn := range d.Connections {
			if _, ok := Districts[conn]; !ok {
				return fmt.Errorf("district %q connects to unknown district %q", dk, conn)
			}
		}
		for _, lk := range d.Locations {
			if _, ok := Locations[lk]; !ok {
				return fmt.Errorf("district %q lists unknown location %q", dk, lk)
			}
		}
	}
	for lk, l := range Locations {
		for _, nk := range l.NPCs {
			if _, ok := NPCs[nk]; !ok {
				return fmt.Errorf("location %q lists unknown npc %q", lk, nk)
			}
		}
	}
	return nil
}
